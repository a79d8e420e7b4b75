package mongodb

import (
	"time"

	"github.com/mavecode/mavecode-api/internal/models"
)

// Required fields per document kind. A document written by another tool that
// lacks any of them is reported as corrupt instead of being served
// half-empty. Optional fields are pointers in the models and are not checked.

func present(values ...string) bool {
	for _, v := range values {
		if v == "" {
			return false
		}
	}
	return true
}

func stamped(times ...time.Time) bool {
	for _, t := range times {
		if t.IsZero() {
			return false
		}
	}
	return true
}

func validUser(u *models.User) bool {
	return present(u.ID, u.Email, u.PasswordHash, u.Name) && stamped(u.CreatedAt)
}

func validCourse(c *models.Course) bool {
	return present(c.ID, c.Title, c.Description, c.Category, c.Level, c.Instructor) &&
		stamped(c.CreatedAt, c.UpdatedAt)
}

func validVideo(v *models.Video) bool {
	return present(v.ID, v.CourseID, v.Title, v.VideoURL, v.Type) && stamped(v.CreatedAt)
}

func validArticle(a *models.Article) bool {
	if a.Tags == nil {
		a.Tags = []string{}
	}
	return present(a.ID, a.Slug, a.Title, a.Content, a.Category, a.Author) &&
		stamped(a.CreatedAt, a.UpdatedAt)
}

func validFAQ(f *models.FAQ) bool {
	return present(f.ID, f.Question, f.Answer, f.Category)
}

func validLiveClass(l *models.LiveClass) bool {
	return present(l.ID, l.Title, l.Instructor) && stamped(l.ScheduledAt, l.CreatedAt)
}

func validOrder(o *models.Order) bool {
	return present(o.ID, o.UserID, o.CourseID, o.Status, o.PaymentMethod) && stamped(o.CreatedAt)
}

func validProgress(p *models.Progress) bool {
	return present(p.ID, p.UserID, p.CourseID, p.VideoID) && stamped(p.UpdatedAt)
}

func validContact(m *models.ContactMessage) bool {
	return present(m.ID, m.Name, m.Email, m.Subject, m.Message) && stamped(m.CreatedAt)
}

func validHero(h *heroDocument) bool {
	return present(h.Title, h.Subtitle, h.CTAText)
}
