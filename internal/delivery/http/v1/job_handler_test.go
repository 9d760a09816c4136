package v1

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"go-jobboard-backend/config"
	"go-jobboard-backend/internal/delivery/http/middleware"
	"go-jobboard-backend/internal/delivery/http/response"
	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"
)

// --- Mocks ---

type MockJobUsecase struct {
	mock.Mock
}

func (m *MockJobUsecase) ListJobs(ctx context.Context, params domain.JobListParams) ([]domain.Job, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Job), args.Error(1)
}

func (m *MockJobUsecase) GetJob(ctx context.Context, id int64) (*domain.Job, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Job), args.Error(1)
}

func (m *MockJobUsecase) CreateJob(ctx context.Context, in *domain.JobInput) (*domain.Job, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Job), args.Error(1)
}

func (m *MockJobUsecase) UpdateJob(ctx context.Context, id int64, in *domain.JobInput) (*domain.Job, error) {
	args := m.Called(ctx, id, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Job), args.Error(1)
}

func (m *MockJobUsecase) DeleteJob(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockHealthUsecase struct {
	mock.Mock
}

func (m *MockHealthUsecase) Check(ctx context.Context) (map[string]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]string), args.Error(1)
}

// --- Helpers ---

func setupRouter(jobUC *MockJobUsecase, healthUC *MockHealthUsecase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	return NewRouter(RouterDeps{
		JobUC:    jobUC,
		HealthUC: healthUC,
		Config:   &config.Config{AllowedOrigins: []string{"*"}},
	})
}

func doRequest(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) response.ErrorBody {
	t.Helper()
	var body response.ErrorBody
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func strPtr(s string) *string { return &s }

func sampleJob(id int64) *domain.Job {
	return &domain.Job{
		ID:          id,
		Title:       "Backend Engineer",
		CompanyName: "Acme",
		Locations:   strPtr("Bengaluru"),
		IsOpen:      true,
		PostedAt:    time.Date(2026, 1, 10, 9, 0, 0, 0, time.UTC),
		Salary:      &domain.Salary{ID: 1, JobID: id, Currency: "INR", Type: "per year"},
		Requirements: &domain.Requirements{
			ID: 1, JobID: id, ApplicationMethod: "website", ApplicationLink: "https://acme.io/apply",
		},
	}
}

// --- Tests ---

func TestJobHandler_List(t *testing.T) {
	t.Run("Should pass repeated and numeric filters to the usecase", func(t *testing.T) {
		jobUC := new(MockJobUsecase)
		r := setupRouter(jobUC, new(MockHealthUsecase))

		jobUC.On("ListJobs", mock.Anything, mock.MatchedBy(func(p domain.JobListParams) bool {
			return p.ShowOpenOnly == "true" &&
				assert.ObjectsAreEqual([]string{"full-time", "internship"}, p.OpportunityTypes) &&
				assert.ObjectsAreEqual([]string{"remote"}, p.WorkplaceTypes) &&
				p.Search == "acme" &&
				p.SalaryMin != nil && *p.SalaryMin == 50000 &&
				p.SalaryMax == nil &&
				p.Experience == "Fresher"
		})).Return([]domain.Job{*sampleJob(1)}, nil)

		w := doRequest(r, http.MethodGet,
			"/api/jobs?showOpenOnly=true&opportunityType=full-time&opportunityType=internship&workplaceType=remote&search=acme&salaryMin=50000&experience=Fresher", "")

		assert.Equal(t, http.StatusOK, w.Code)
		var jobs []domain.Job
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &jobs))
		assert.Len(t, jobs, 1)
		assert.Equal(t, "Acme", jobs[0].CompanyName)
		jobUC.AssertExpectations(t)
	})

	t.Run("Should return an empty array, not null", func(t *testing.T) {
		jobUC := new(MockJobUsecase)
		r := setupRouter(jobUC, new(MockHealthUsecase))
		jobUC.On("ListJobs", mock.Anything, mock.Anything).Return([]domain.Job{}, nil)

		w := doRequest(r, http.MethodGet, "/api/jobs", "")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, "[]", w.Body.String())
	})

	t.Run("Should reject a malformed salary", func(t *testing.T) {
		jobUC := new(MockJobUsecase)
		r := setupRouter(jobUC, new(MockHealthUsecase))

		w := doRequest(r, http.MethodGet, "/api/jobs?salaryMin=lots", "")

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Minimum salary must be a number", decodeError(t, w).Message)
		jobUC.AssertNotCalled(t, "ListJobs", mock.Anything, mock.Anything)
	})

	t.Run("Should reject an unknown experience level", func(t *testing.T) {
		jobUC := new(MockJobUsecase)
		r := setupRouter(jobUC, new(MockHealthUsecase))

		w := doRequest(r, http.MethodGet, "/api/jobs?experience=Senior", "")

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Experience must be one of: Fresher, Experienced", decodeError(t, w).Message)
	})

	t.Run("Should hide storage failures", func(t *testing.T) {
		jobUC := new(MockJobUsecase)
		r := setupRouter(jobUC, new(MockHealthUsecase))
		jobUC.On("ListJobs", mock.Anything, mock.Anything).
			Return(nil, apperror.Internal(errors.New("relation \"jobs\" does not exist")))

		w := doRequest(r, http.MethodGet, "/api/jobs", "")

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		body := decodeError(t, w)
		assert.Equal(t, "Server error", body.Message)
		assert.NotEmpty(t, body.RequestID)
		assert.Equal(t, body.RequestID, w.Header().Get(middleware.RequestIDHeader))
	})
}

func TestJobHandler_GetDetails(t *testing.T) {
	t.Run("Should return the job", func(t *testing.T) {
		jobUC := new(MockJobUsecase)
		r := setupRouter(jobUC, new(MockHealthUsecase))
		jobUC.On("GetJob", mock.Anything, int64(7)).Return(sampleJob(7), nil)

		w := doRequest(r, http.MethodGet, "/api/jobs/7", "")

		assert.Equal(t, http.StatusOK, w.Code)
		var job domain.Job
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &job))
		assert.Equal(t, int64(7), job.ID)
		assert.Equal(t, "https://acme.io/apply", job.Requirements.ApplicationLink)
	})

	t.Run("Should map not found to 404", func(t *testing.T) {
		jobUC := new(MockJobUsecase)
		r := setupRouter(jobUC, new(MockHealthUsecase))
		jobUC.On("GetJob", mock.Anything, int64(99)).Return(nil, apperror.NotFound("Job not found"))

		w := doRequest(r, http.MethodGet, "/api/jobs/99", "")

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "Job not found", decodeError(t, w).Message)
	})

	t.Run("Should reject a non-numeric id", func(t *testing.T) {
		jobUC := new(MockJobUsecase)
		r := setupRouter(jobUC, new(MockHealthUsecase))

		w := doRequest(r, http.MethodGet, "/api/jobs/abc", "")

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Invalid ID format", decodeError(t, w).Message)
		jobUC.AssertNotCalled(t, "GetJob", mock.Anything, mock.Anything)
	})
}

func TestJobHandler_Create(t *testing.T) {
	t.Run("Should parse the flattened form", func(t *testing.T) {
		jobUC := new(MockJobUsecase)
		r := setupRouter(jobUC, new(MockHealthUsecase))

		var got *domain.JobInput
		jobUC.On("CreateJob", mock.Anything, mock.AnythingOfType("*domain.JobInput")).
			Run(func(args mock.Arguments) { got = args.Get(1).(*domain.JobInput) }).
			Return(sampleJob(1), nil)

		body := `{
			"title": "Backend Engineer",
			"companyName": "Acme",
			"companyWebsite": "acme.io",
			"contactEmail": "hr@acme.io",
			"salaryMin": "40000",
			"salaryMax": 90000.5,
			"minExperience": "",
			"maxExperience": 3,
			"deadline": "2026-12-31",
			"applicationMethod": "email",
			"applicationLink": "https://acme.io/apply"
		}`
		w := doRequest(r, http.MethodPost, "/api/jobs", body)

		assert.Equal(t, http.StatusCreated, w.Code)
		require.NotNil(t, got)
		assert.Equal(t, "Backend Engineer", got.Title)
		require.NotNil(t, got.SalaryMin)
		assert.Equal(t, 40000.0, *got.SalaryMin)
		require.NotNil(t, got.SalaryMax)
		assert.Equal(t, 90000.5, *got.SalaryMax)
		assert.Nil(t, got.MinExperience)
		require.NotNil(t, got.MaxExperience)
		assert.Equal(t, 3, *got.MaxExperience)
		require.NotNil(t, got.Deadline)
		assert.Equal(t, "2026-12-31", got.Deadline.Format("2006-01-02"))
		assert.Equal(t, "email", got.ApplicationMethod)
		assert.Nil(t, got.IsOpen)
		assert.Nil(t, got.Description)
	})

	t.Run("Should require the application link before anything else", func(t *testing.T) {
		jobUC := new(MockJobUsecase)
		r := setupRouter(jobUC, new(MockHealthUsecase))

		w := doRequest(r, http.MethodPost, "/api/jobs", `{"title":"X","salaryMin":"abc","applicationLink":"  "}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Application link is required", decodeError(t, w).Message)
		jobUC.AssertNotCalled(t, "CreateJob", mock.Anything, mock.Anything)
	})

	t.Run("Should reject non-numeric amounts", func(t *testing.T) {
		jobUC := new(MockJobUsecase)
		r := setupRouter(jobUC, new(MockHealthUsecase))

		w := doRequest(r, http.MethodPost, "/api/jobs", `{"salaryMin":"abc","applicationLink":"https://a.io"}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		body := decodeError(t, w)
		assert.Equal(t, "Minimum salary must be a number", body.Message)
		assert.Contains(t, body.Errors, "Minimum salary must be a number")
	})

	t.Run("Should reject unknown salary types", func(t *testing.T) {
		jobUC := new(MockJobUsecase)
		r := setupRouter(jobUC, new(MockHealthUsecase))

		w := doRequest(r, http.MethodPost, "/api/jobs", `{"salaryType":"per week","applicationLink":"https://a.io"}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Salary type must be one of: per year, per month, per hour", decodeError(t, w).Message)
	})

	t.Run("Should reject malformed JSON", func(t *testing.T) {
		jobUC := new(MockJobUsecase)
		r := setupRouter(jobUC, new(MockHealthUsecase))

		w := doRequest(r, http.MethodPost, "/api/jobs", `{"title":`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Invalid request body", decodeError(t, w).Message)
	})

	t.Run("Should reject a boolean where a number is expected", func(t *testing.T) {
		jobUC := new(MockJobUsecase)
		r := setupRouter(jobUC, new(MockHealthUsecase))

		w := doRequest(r, http.MethodPost, "/api/jobs", `{"salaryMin":true,"applicationLink":"https://a.io"}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Should not leak internal errors", func(t *testing.T) {
		jobUC := new(MockJobUsecase)
		r := setupRouter(jobUC, new(MockHealthUsecase))
		jobUC.On("CreateJob", mock.Anything, mock.Anything).
			Return(nil, apperror.Internal(errors.New("pq: duplicate key")))

		w := doRequest(r, http.MethodPost, "/api/jobs", `{"applicationLink":"https://a.io"}`)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.NotContains(t, w.Body.String(), "duplicate")
	})
}

func TestJobHandler_CreateNumericAndDateBounds(t *testing.T) {
	t.Run("Should keep the written date for offset deadlines", func(t *testing.T) {
		jobUC := new(MockJobUsecase)
		r := setupRouter(jobUC, new(MockHealthUsecase))

		var got *domain.JobInput
		jobUC.On("CreateJob", mock.Anything, mock.AnythingOfType("*domain.JobInput")).
			Run(func(args mock.Arguments) { got = args.Get(1).(*domain.JobInput) }).
			Return(sampleJob(1), nil)

		w := doRequest(r, http.MethodPost, "/api/jobs",
			`{"deadline":"2025-01-01T00:00:00+05:30","applicationLink":"https://a.io"}`)

		assert.Equal(t, http.StatusCreated, w.Code)
		require.NotNil(t, got)
		require.NotNil(t, got.Deadline)
		assert.Equal(t, "2025-01-01", got.Deadline.Format("2006-01-02"))
	})

	t.Run("Should reject experience beyond the integer column", func(t *testing.T) {
		jobUC := new(MockJobUsecase)
		r := setupRouter(jobUC, new(MockHealthUsecase))

		w := doRequest(r, http.MethodPost, "/api/jobs",
			`{"minExperience":3000000000,"applicationLink":"https://a.io"}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Minimum experience is too large", decodeError(t, w).Message)
		jobUC.AssertNotCalled(t, "CreateJob", mock.Anything, mock.Anything)
	})
}

func TestJobRequest_ToInput(t *testing.T) {
	t.Run("Should not shift positive-offset deadlines to the previous day", func(t *testing.T) {
		req := JobRequest{Deadline: "2025-01-01T00:00:00+05:30", ApplicationLink: "https://a.io"}

		in, err := req.toInput()
		require.NoError(t, err)
		require.NotNil(t, in.Deadline)
		assert.Equal(t, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), *in.Deadline)
	})

	t.Run("Should accept the largest integer experience", func(t *testing.T) {
		req := JobRequest{MaxExperience: "2147483647", ApplicationLink: "https://a.io"}

		in, err := req.toInput()
		require.NoError(t, err)
		require.NotNil(t, in.MaxExperience)
		assert.Equal(t, 2147483647, *in.MaxExperience)
	})

	t.Run("Should reject experience above the integer range", func(t *testing.T) {
		req := JobRequest{MaxExperience: "2147483648", ApplicationLink: "https://a.io"}

		_, err := req.toInput()
		require.Error(t, err)
		assert.Equal(t, "Maximum experience is too large", err.Error())
	})
}

func TestJobHandler_Update(t *testing.T) {
	t.Run("Should forward id and isOpen", func(t *testing.T) {
		jobUC := new(MockJobUsecase)
		r := setupRouter(jobUC, new(MockHealthUsecase))

		jobUC.On("UpdateJob", mock.Anything, int64(3), mock.MatchedBy(func(in *domain.JobInput) bool {
			return in.IsOpen != nil && !*in.IsOpen && in.ApplicationLink == "https://a.io"
		})).Return(sampleJob(3), nil)

		w := doRequest(r, http.MethodPut, "/api/jobs/3", `{"isOpen":false,"applicationLink":"https://a.io"}`)

		assert.Equal(t, http.StatusOK, w.Code)
		jobUC.AssertExpectations(t)
	})

	t.Run("Should return 404 for a missing job", func(t *testing.T) {
		jobUC := new(MockJobUsecase)
		r := setupRouter(jobUC, new(MockHealthUsecase))
		jobUC.On("UpdateJob", mock.Anything, int64(3), mock.Anything).Return(nil, apperror.NotFound("Job not found"))

		w := doRequest(r, http.MethodPut, "/api/jobs/3", `{"applicationLink":"https://a.io"}`)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("Should require the application link", func(t *testing.T) {
		jobUC := new(MockJobUsecase)
		r := setupRouter(jobUC, new(MockHealthUsecase))

		w := doRequest(r, http.MethodPut, "/api/jobs/3", `{"title":"X"}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Application link is required", decodeError(t, w).Message)
	})
}

func TestJobHandler_Delete(t *testing.T) {
	t.Run("Should acknowledge the removal", func(t *testing.T) {
		jobUC := new(MockJobUsecase)
		r := setupRouter(jobUC, new(MockHealthUsecase))
		jobUC.On("DeleteJob", mock.Anything, int64(5)).Return(nil)

		w := doRequest(r, http.MethodDelete, "/api/jobs/5", "")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"message":"Job removed"}`, w.Body.String())
	})

	t.Run("Should return 404 for a missing job", func(t *testing.T) {
		jobUC := new(MockJobUsecase)
		r := setupRouter(jobUC, new(MockHealthUsecase))
		jobUC.On("DeleteJob", mock.Anything, int64(5)).Return(apperror.NotFound("Job not found"))

		w := doRequest(r, http.MethodDelete, "/api/jobs/5", "")

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "Job not found", decodeError(t, w).Message)
	})
}

func TestHealthHandler(t *testing.T) {
	t.Run("Should report a healthy database", func(t *testing.T) {
		healthUC := new(MockHealthUsecase)
		r := setupRouter(new(MockJobUsecase), healthUC)
		healthUC.On("Check", mock.Anything).Return(map[string]string{"status": "ok", "database": "ok"}, nil)

		w := doRequest(r, http.MethodGet, "/api/health", "")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"status":"ok","database":"ok"}`, w.Body.String())
	})

	t.Run("Should return 503 when the database is down", func(t *testing.T) {
		healthUC := new(MockHealthUsecase)
		r := setupRouter(new(MockJobUsecase), healthUC)
		healthUC.On("Check", mock.Anything).Return(nil, apperror.Unavailable("Database unavailable", errors.New("dial tcp")))

		w := doRequest(r, http.MethodGet, "/api/health", "")

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		assert.Equal(t, "Database unavailable", decodeError(t, w).Message)
	})

	t.Run("Should greet on the root path", func(t *testing.T) {
		r := setupRouter(new(MockJobUsecase), new(MockHealthUsecase))

		w := doRequest(r, http.MethodGet, "/", "")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Welcome")
	})
}
