package sync_date

import (
	"fmt"
	"time"

	"github.com/GuilhermePeritto/campo-e-gole-sub000/internal/domain"
	syncDate "github.com/GuilhermePeritto/campo-e-gole-sub000/internal/usecase/sync_date"
)

// SyncRequest тело запроса контроллера синхронизации дат
type SyncRequest struct {
	Action string `json:"action"` // pick | navigate | set_view

	View   string `json:"view"`   // текущий вид представления
	Anchor string `json:"anchor"` // опорная дата периода, YYYY-MM-DD
	Picked string `json:"picked"` // дата мини-календаря, YYYY-MM-DD

	Target     string `json:"target,omitempty"`     // для pick
	Direction  string `json:"direction,omitempty"`  // для navigate
	TargetView string `json:"targetView,omitempty"` // для set_view
}

// SyncResponse результат перехода состояния
type SyncResponse struct {
	View      string `json:"view"`
	Anchor    string `json:"anchor"`
	Picked    string `json:"picked"`
	Navigated bool   `json:"navigated"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *SyncRequest) ToUseCaseRequest() (*syncDate.Request, error) {
	anchor, err := time.Parse(domain.DateFormat, r.Anchor)
	if err != nil {
		return nil, fmt.Errorf("invalid anchor %q: %w", r.Anchor, err)
	}

	req := &syncDate.Request{
		Action:     syncDate.Action(r.Action),
		View:       domain.ViewKind(r.View),
		Anchor:     anchor,
		Direction:  syncDate.Direction(r.Direction),
		TargetView: domain.ViewKind(r.TargetView),
	}

	if r.Picked != "" {
		picked, err := time.Parse(domain.DateFormat, r.Picked)
		if err != nil {
			return nil, fmt.Errorf("invalid picked %q: %w", r.Picked, err)
		}
		req.Picked = picked
	}

	if r.Target != "" {
		target, err := time.Parse(domain.DateFormat, r.Target)
		if err != nil {
			return nil, fmt.Errorf("invalid target %q: %w", r.Target, err)
		}
		req.Target = target
	}

	return req, nil
}

// ToHTTPResponse сериализует результат перехода
func ToHTTPResponse(resp *syncDate.Response) *SyncResponse {
	return &SyncResponse{
		View:      string(resp.View),
		Anchor:    resp.Anchor.Format(domain.DateFormat),
		Picked:    resp.Picked.Format(domain.DateFormat),
		Navigated: resp.Navigated,
	}
}
