package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"schoolsite_backend/internals/features/school/routines/model"
)

/* ===================== REQUESTS ===================== */

type RoutineRowRequest struct {
	Time     string   `json:"time"`
	Subjects []string `json:"subjects"`
}

// SaveRoutineRequest: "class" diterima juga untuk klien lama.
type SaveRoutineRequest struct {
	ClassName string              `json:"className"`
	Class     string              `json:"class"`
	Rows      []RoutineRowRequest `json:"rows"`
}

func (r SaveRoutineRequest) Name() string {
	if s := strings.TrimSpace(r.ClassName); s != "" {
		return s
	}
	return strings.TrimSpace(r.Class)
}

// ToRows menjaga urutan baris, urutan subject, dan isi sel apa adanya.
func (r SaveRoutineRequest) ToRows() []model.RoutineRowModel {
	out := make([]model.RoutineRowModel, 0, len(r.Rows))
	for i, row := range r.Rows {
		subjects := make(pq.StringArray, 0, len(row.Subjects))
		subjects = append(subjects, row.Subjects...)
		out = append(out, model.RoutineRowModel{
			RoutineRowPosition: i,
			RoutineRowTime:     row.Time,
			RoutineRowSubjects: subjects,
		})
	}
	return out
}

/* ===================== RESPONSES ===================== */

type RoutineRowResponse struct {
	Time     string   `json:"time"`
	Subjects []string `json:"subjects"`
}

type RoutineResponse struct {
	ID        uuid.UUID            `json:"id"`
	ClassName string               `json:"class"`
	Rows      []RoutineRowResponse `json:"rows"`
	CreatedAt time.Time            `json:"createdAt"`
	UpdatedAt time.Time            `json:"updatedAt"`
}

func FromModel(m *model.RoutineModel) RoutineResponse {
	rows := make([]RoutineRowResponse, 0, len(m.Rows))
	for _, r := range m.Rows {
		subjects := []string(r.RoutineRowSubjects)
		if subjects == nil {
			subjects = []string{}
		}
		rows = append(rows, RoutineRowResponse{Time: r.RoutineRowTime, Subjects: subjects})
	}
	return RoutineResponse{
		ID:        m.RoutineID,
		ClassName: m.RoutineClassName,
		Rows:      rows,
		CreatedAt: m.RoutineCreatedAt,
		UpdatedAt: m.RoutineUpdatedAt,
	}
}

func FromModels(items []model.RoutineModel) []RoutineResponse {
	out := make([]RoutineResponse, 0, len(items))
	for i := range items {
		out = append(out, FromModel(&items[i]))
	}
	return out
}
