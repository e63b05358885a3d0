package incapacity_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/ProfileJass/Incapacities/internal/incapacity"
	incapacityerrors "github.com/ProfileJass/Incapacities/internal/incapacity/errors"
	"github.com/ProfileJass/Incapacities/internal/shared/apperror"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	apperror.Init()
	os.Exit(m.Run())
}

type apiFieldError struct {
	Path    string `json:"path"`
	Message string `json:"message"`
}

type apiEnvelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Count   *int            `json:"count"`
	Errors  []apiFieldError `json:"errors"`
}

func decodeEnvelope(t *testing.T, body []byte) apiEnvelope {
	t.Helper()
	var env apiEnvelope
	err := json.Unmarshal(body, &env)
	assert.NoError(t, err)
	return env
}

type fakeIncapacityService struct {
	createFn    func(ctx context.Context, req incapacity.CreateIncapacityRequest) (incapacity.IncapacityResponse, error)
	getAllFn    func(ctx context.Context) ([]incapacity.IncapacityResponse, error)
	getByUserFn func(ctx context.Context, userID string) ([]incapacity.IncapacityResponse, error)
	updateFn    func(ctx context.Context, id string, req incapacity.UpdateIncapacityRequest) (incapacity.IncapacityResponse, error)
}

func (f *fakeIncapacityService) Create(ctx context.Context, req incapacity.CreateIncapacityRequest) (incapacity.IncapacityResponse, error) {
	return f.createFn(ctx, req)
}
func (f *fakeIncapacityService) GetAll(ctx context.Context) ([]incapacity.IncapacityResponse, error) {
	return f.getAllFn(ctx)
}
func (f *fakeIncapacityService) GetByUser(ctx context.Context, userID string) ([]incapacity.IncapacityResponse, error) {
	return f.getByUserFn(ctx, userID)
}
func (f *fakeIncapacityService) Update(ctx context.Context, id string, req incapacity.UpdateIncapacityRequest) (incapacity.IncapacityResponse, error) {
	return f.updateFn(ctx, id, req)
}

func createBody() string {
	return `{
		"user": {"firstName":"Laura","lastName":"Mejia","email":"laura.mejia@acme.co","role":"analyst"},
		"payroll": {"nameCompany":"Acme SAS","NIT":"900123456-7","adressCompany":"Calle 10 # 5-51","phone":"6015551234"},
		"incapacity": {"start_date":"2026-03-01","end_date":"2026-03-05","type":"enfermedad","observacion":"Reposo"}
	}`
}

func TestIncapacityHandler_Create(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := &fakeIncapacityService{
			createFn: func(ctx context.Context, req incapacity.CreateIncapacityRequest) (incapacity.IncapacityResponse, error) {
				assert.Equal(t, "laura.mejia@acme.co", req.User.Email)
				assert.Equal(t, incapacity.TypeEnfermedad, req.Incapacity.Type)
				start := req.Incapacity.StartDate
				end := req.Incapacity.EndDate
				return incapacity.IncapacityResponse{
					ID:        uuid.New().String(),
					UserID:    uuid.New().String(),
					PayrollID: uuid.New().String(),
					StartDate: &start,
					EndDate:   &end,
					Type:      req.Incapacity.Type,
					Status:    incapacity.StatusPendiente,
				}, nil
			},
		}

		h := incapacity.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPost, "/incapacities", strings.NewReader(createBody()))
		c.Request.Header.Set("Content-Type", "application/json")

		h.Create(c)

		assert.Equal(t, http.StatusCreated, w.Code)
		env := decodeEnvelope(t, w.Body.Bytes())
		assert.True(t, env.Success)
		assert.Equal(t, "Incapacity created successfully", env.Message)
		var got incapacity.IncapacityResponse
		assert.NoError(t, json.Unmarshal(env.Data, &got))
		assert.Equal(t, incapacity.StatusPendiente, got.Status)
	})

	t.Run("negative validation error", func(t *testing.T) {
		h := incapacity.NewHandler(&fakeIncapacityService{})
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPost, "/incapacities", strings.NewReader(`{}`))
		c.Request.Header.Set("Content-Type", "application/json")

		h.Create(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		env := decodeEnvelope(t, w.Body.Bytes())
		assert.False(t, env.Success)
		assert.Equal(t, "Validation error", env.Message)
		assert.NotEmpty(t, env.Errors)
	})

	t.Run("negative unknown type rejected at binding", func(t *testing.T) {
		h := incapacity.NewHandler(&fakeIncapacityService{})
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		body := strings.Replace(createBody(), "enfermedad", "vacaciones", 1)
		c.Request = httptest.NewRequest(http.MethodPost, "/incapacities", strings.NewReader(body))
		c.Request.Header.Set("Content-Type", "application/json")

		h.Create(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		env := decodeEnvelope(t, w.Body.Bytes())
		assert.False(t, env.Success)
		assert.NotEmpty(t, env.Errors)
		assert.Contains(t, env.Errors[0].Path, "type")
	})

	t.Run("negative service error", func(t *testing.T) {
		svc := &fakeIncapacityService{
			createFn: func(ctx context.Context, req incapacity.CreateIncapacityRequest) (incapacity.IncapacityResponse, error) {
				return incapacity.IncapacityResponse{}, incapacityerrors.ErrInvalidType
			},
		}
		h := incapacity.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPost, "/incapacities", strings.NewReader(createBody()))
		c.Request.Header.Set("Content-Type", "application/json")

		h.Create(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		env := decodeEnvelope(t, w.Body.Bytes())
		assert.False(t, env.Success)
		assert.Equal(t, "Invalid incapacity type", env.Message)
	})
}

func TestIncapacityHandler_GetAll(t *testing.T) {
	t.Run("success with count", func(t *testing.T) {
		svc := &fakeIncapacityService{
			getAllFn: func(ctx context.Context) ([]incapacity.IncapacityResponse, error) {
				return []incapacity.IncapacityResponse{
					{ID: uuid.New().String(), Type: incapacity.TypeAccidente, Status: incapacity.StatusPendiente},
					{ID: uuid.New().String(), Type: incapacity.TypeMaternidad, Status: incapacity.StatusConfirmada},
				}, nil
			},
		}
		h := incapacity.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/incapacities", nil)

		h.GetAll(c)

		assert.Equal(t, http.StatusOK, w.Code)
		env := decodeEnvelope(t, w.Body.Bytes())
		assert.True(t, env.Success)
		assert.Equal(t, "Incapacities retrieved successfully", env.Message)
		assert.NotNil(t, env.Count)
		assert.Equal(t, 2, *env.Count)
	})

	t.Run("success empty list counts zero", func(t *testing.T) {
		svc := &fakeIncapacityService{
			getAllFn: func(ctx context.Context) ([]incapacity.IncapacityResponse, error) {
				return []incapacity.IncapacityResponse{}, nil
			},
		}
		h := incapacity.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/incapacities", nil)

		h.GetAll(c)

		assert.Equal(t, http.StatusOK, w.Code)
		env := decodeEnvelope(t, w.Body.Bytes())
		assert.True(t, env.Success)
		assert.NotNil(t, env.Count)
		assert.Equal(t, 0, *env.Count)
	})

	t.Run("negative service error", func(t *testing.T) {
		svc := &fakeIncapacityService{
			getAllFn: func(ctx context.Context) ([]incapacity.IncapacityResponse, error) {
				return nil, errors.New("db down")
			},
		}
		h := incapacity.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/incapacities", nil)

		h.GetAll(c)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		env := decodeEnvelope(t, w.Body.Bytes())
		assert.False(t, env.Success)
	})
}

func TestIncapacityHandler_GetByUser(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		userID := uuid.New().String()
		svc := &fakeIncapacityService{
			getByUserFn: func(ctx context.Context, uid string) ([]incapacity.IncapacityResponse, error) {
				assert.Equal(t, userID, uid)
				return []incapacity.IncapacityResponse{
					{ID: uuid.New().String(), UserID: uid, Type: incapacity.TypeEnfermedad, Status: incapacity.StatusEnTramite},
				}, nil
			},
		}
		h := incapacity.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/incapacities/user/"+userID, nil)
		c.Params = []gin.Param{{Key: "userId", Value: userID}}

		h.GetByUser(c)

		assert.Equal(t, http.StatusOK, w.Code)
		env := decodeEnvelope(t, w.Body.Bytes())
		assert.True(t, env.Success)
		assert.Equal(t, "User incapacities retrieved successfully", env.Message)
		assert.NotNil(t, env.Count)
		assert.Equal(t, 1, *env.Count)
	})

	t.Run("negative malformed uuid", func(t *testing.T) {
		svc := &fakeIncapacityService{
			getByUserFn: func(ctx context.Context, uid string) ([]incapacity.IncapacityResponse, error) {
				t.Fatal("service must not be called for a malformed uuid")
				return nil, nil
			},
		}
		h := incapacity.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/incapacities/user/abc", nil)
		c.Params = []gin.Param{{Key: "userId", Value: "abc"}}

		h.GetByUser(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		env := decodeEnvelope(t, w.Body.Bytes())
		assert.False(t, env.Success)
		assert.Equal(t, "Invalid parameter", env.Message)
		assert.Len(t, env.Errors, 1)
		assert.Equal(t, "userId", env.Errors[0].Path)
		assert.Equal(t, "Invalid UUID format", env.Errors[0].Message)
	})
}

func TestIncapacityHandler_Update(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		id := uuid.New().String()
		svc := &fakeIncapacityService{
			updateFn: func(ctx context.Context, targetID string, req incapacity.UpdateIncapacityRequest) (incapacity.IncapacityResponse, error) {
				assert.Equal(t, id, targetID)
				assert.NotNil(t, req.Status)
				assert.Equal(t, incapacity.StatusConfirmada, *req.Status)
				assert.Nil(t, req.StartDate)
				return incapacity.IncapacityResponse{ID: targetID, Status: *req.Status}, nil
			},
		}
		h := incapacity.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPut, "/incapacities/"+id, strings.NewReader(`{"status":"confirmada"}`))
		c.Request.Header.Set("Content-Type", "application/json")
		c.Params = []gin.Param{{Key: "id", Value: id}}

		h.Update(c)

		assert.Equal(t, http.StatusOK, w.Code)
		env := decodeEnvelope(t, w.Body.Bytes())
		assert.True(t, env.Success)
		assert.Equal(t, "Incapacity updated successfully", env.Message)
		var got incapacity.IncapacityResponse
		assert.NoError(t, json.Unmarshal(env.Data, &got))
		assert.Equal(t, incapacity.StatusConfirmada, got.Status)
	})

	t.Run("negative malformed uuid", func(t *testing.T) {
		h := incapacity.NewHandler(&fakeIncapacityService{})
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPut, "/incapacities/123", strings.NewReader(`{"status":"confirmada"}`))
		c.Request.Header.Set("Content-Type", "application/json")
		c.Params = []gin.Param{{Key: "id", Value: "123"}}

		h.Update(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		env := decodeEnvelope(t, w.Body.Bytes())
		assert.False(t, env.Success)
		assert.Equal(t, "Invalid parameter", env.Message)
		assert.Equal(t, "id", env.Errors[0].Path)
	})

	t.Run("negative not found", func(t *testing.T) {
		svc := &fakeIncapacityService{
			updateFn: func(ctx context.Context, targetID string, req incapacity.UpdateIncapacityRequest) (incapacity.IncapacityResponse, error) {
				return incapacity.IncapacityResponse{}, incapacityerrors.ErrIncapacityNotFound
			},
		}
		h := incapacity.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		id := uuid.New().String()
		c.Request = httptest.NewRequest(http.MethodPut, "/incapacities/"+id, strings.NewReader(`{"status":"negada"}`))
		c.Request.Header.Set("Content-Type", "application/json")
		c.Params = []gin.Param{{Key: "id", Value: id}}

		h.Update(c)

		assert.Equal(t, http.StatusNotFound, w.Code)
		env := decodeEnvelope(t, w.Body.Bytes())
		assert.False(t, env.Success)
		assert.Equal(t, "Incapacity not found", env.Message)
	})

	t.Run("negative invalid date range", func(t *testing.T) {
		svc := &fakeIncapacityService{
			updateFn: func(ctx context.Context, targetID string, req incapacity.UpdateIncapacityRequest) (incapacity.IncapacityResponse, error) {
				return incapacity.IncapacityResponse{}, incapacityerrors.ErrInvalidDateRange
			},
		}
		h := incapacity.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		id := uuid.New().String()
		body := `{"start_date":"2026-05-10","end_date":"2026-05-01"}`
		c.Request = httptest.NewRequest(http.MethodPut, "/incapacities/"+id, strings.NewReader(body))
		c.Request.Header.Set("Content-Type", "application/json")
		c.Params = []gin.Param{{Key: "id", Value: id}}

		h.Update(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		env := decodeEnvelope(t, w.Body.Bytes())
		assert.False(t, env.Success)
		assert.Equal(t, "End date must be after start date", env.Message)
	})
}
