package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jendo/backend/internal/doctor/domain"
)

type memDoctorRepo struct {
	nextID  int64
	doctors map[int64]*domain.Doctor
}

func newMemDoctorRepo() *memDoctorRepo {
	return &memDoctorRepo{nextID: 1, doctors: map[int64]*domain.Doctor{}}
}

func (m *memDoctorRepo) Create(_ context.Context, d *domain.Doctor) (int64, error) {
	id := m.nextID
	m.nextID++
	cp := *d
	cp.ID = id
	m.doctors[id] = &cp
	return id, nil
}

func (m *memDoctorRepo) GetByID(_ context.Context, id int64) (*domain.Doctor, error) {
	d, ok := m.doctors[id]
	if !ok {
		return nil, nil
	}
	cp := *d
	return &cp, nil
}

func (m *memDoctorRepo) List(_ context.Context) ([]*domain.Doctor, error) {
	out := make([]*domain.Doctor, 0, len(m.doctors))
	for _, d := range m.doctors {
		cp := *d
		out = append(out, &cp)
	}
	return out, nil
}

func (m *memDoctorRepo) Update(_ context.Context, d *domain.Doctor) error {
	cp := *d
	m.doctors[d.ID] = &cp
	return nil
}

func (m *memDoctorRepo) Delete(_ context.Context, id int64) error {
	delete(m.doctors, id)
	return nil
}

func newTestMux(t *testing.T) (*http.ServeMux, *memDoctorRepo) {
	t.Helper()
	repo := newMemDoctorRepo()
	mux := http.NewServeMux()
	New(repo, zerolog.Nop()).Register(mux)
	return mux, repo
}

func postJSON(t *testing.T, mux *http.ServeMux, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	b, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, req)
	return rr
}

func TestCreateThenGetDoctor(t *testing.T) {
	mux, _ := newTestMux(t)

	rr := postJSON(t, mux, "/api/doctors", map[string]any{
		"fullName":        "Dr. Nimal Perera",
		"specialization":  "Cardiology",
		"hospital":        "Colombo General",
		"email":           "nimal@example.com",
		"consultationFee": 2500.0,
	})
	require.Equal(t, http.StatusCreated, rr.Code)

	var created struct {
		ID int64 `json:"id"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &created))
	require.NotZero(t, created.ID)

	req := httptest.NewRequest(http.MethodGet, "/api/doctors/1", nil)
	rr = httptest.NewRecorder()
	mux.ServeHTTP(rr, req)
	require.Equal(t, http.StatusOK, rr.Code)

	var got map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	assert.Equal(t, "Dr. Nimal Perera", got["fullName"])
	assert.Equal(t, "Cardiology", got["specialization"])
	assert.Equal(t, 2500.0, got["consultationFee"])
}

func TestCreateDoctorRequiresFullName(t *testing.T) {
	mux, repo := newTestMux(t)

	rr := postJSON(t, mux, "/api/doctors", map[string]any{"specialization": "Cardiology"})
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Empty(t, repo.doctors)
}

func TestGetMissingDoctorIs404(t *testing.T) {
	mux, _ := newTestMux(t)

	req := httptest.NewRequest(http.MethodGet, "/api/doctors/99", nil)
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestDeleteDoctor(t *testing.T) {
	mux, repo := newTestMux(t)

	rr := postJSON(t, mux, "/api/doctors", map[string]any{"fullName": "Dr. A"})
	require.Equal(t, http.StatusCreated, rr.Code)

	req := httptest.NewRequest(http.MethodDelete, "/api/doctors/1", nil)
	rr = httptest.NewRecorder()
	mux.ServeHTTP(rr, req)
	require.Equal(t, http.StatusNoContent, rr.Code)
	assert.Empty(t, repo.doctors)
}
