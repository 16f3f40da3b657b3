package services

import (
	"time"

	"gearguard/internal/entities"
)

// Корректирующая заявка считается просроченной спустя 48 часов после создания.
const correctiveOverdueAfter = 48 * time.Hour

// IsOverdue — чистая политика просрочки. Терминальные стадии не бывают
// просроченными. Preventive просрочена, когда её плановая дата в прошлом;
// Corrective — когда с момента создания прошло больше 48 часов.
func IsOverdue(req *entities.Request, now time.Time) bool {
	if req.Stage.IsTerminal() {
		return false
	}
	if req.Type == entities.TypePreventive && req.ScheduledDate != nil {
		return req.ScheduledDate.Before(now)
	}
	return now.Sub(req.CreatedAt) > correctiveOverdueAfter
}
