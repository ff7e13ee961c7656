package api_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formkit/internal/api"
	"github.com/dmitrymomot/formkit/pkg/binder"
	"github.com/dmitrymomot/formkit/pkg/metrics"
	"github.com/dmitrymomot/formkit/pkg/requestid"
	"github.com/dmitrymomot/formkit/pkg/ruleset"
	"github.com/dmitrymomot/formkit/pkg/sanitizer"
	"github.com/dmitrymomot/formkit/pkg/validator"
)

const formsYAML = `
forms:
  signup:
    rules:
      - [[name, email], required, {}, "Field is required"]
      - [email, email, {}, "Incorrect email"]
      - [age, integer, {min: 18}, "Too young"]
    filters:
      - ["*", trim]
      - [email, lowercase]
  broken:
    rules:
      - [name, nonexistent]
`

func newTestService(t *testing.T, opts ...api.Option) (http.Handler, *prometheus.Registry) {
	t.Helper()

	cat, err := ruleset.Parse([]byte(formsYAML), ruleset.FormatYAML)
	require.NoError(t, err)

	reg := prometheus.NewRegistry()
	opts = append([]api.Option{
		api.WithMetrics(metrics.New(reg, "")),
		api.WithGatherer(reg),
	}, opts...)

	svc := api.NewService(cat, validator.Validators(), sanitizer.Filters(), opts...)
	return svc.Handle(), reg
}

func do(t *testing.T, h http.Handler, req *http.Request) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var body map[string]any
	if strings.HasPrefix(rec.Header().Get("Content-Type"), "application/json") {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	}
	return rec, body
}

func TestListForms(t *testing.T) {
	t.Parallel()

	h, _ := newTestService(t)
	rec, body := do(t, h, httptest.NewRequest(http.MethodGet, "/forms", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []any{"broken", "signup"}, body["forms"])
	assert.NotEmpty(t, rec.Header().Get(requestid.Header))
}

func TestDescribeForm(t *testing.T) {
	t.Parallel()

	h, _ := newTestService(t)

	t.Run("known form", func(t *testing.T) {
		t.Parallel()
		rec, body := do(t, h, httptest.NewRequest(http.MethodGet, "/forms/signup", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "signup", body["name"])
		assert.Equal(t, []any{"name", "email", "age"}, body["fields"])
		assert.EqualValues(t, 3, body["rules"])
		assert.EqualValues(t, 2, body["filters"])
	})

	t.Run("unknown form", func(t *testing.T) {
		t.Parallel()
		rec, body := do(t, h, httptest.NewRequest(http.MethodGet, "/forms/missing", nil))
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, api.CodeNotFound, body["error"].(map[string]any)["code"])
	})
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		form        string
		contentType string
		body        string
		status      int
		check       func(t *testing.T, body map[string]any)
	}{
		{
			name:        "valid json",
			form:        "signup",
			contentType: "application/json",
			body:        `{"name":"  Ann ","email":" ANN@Example.com ","age":30,"extra":"dropped"}`,
			status:      http.StatusOK,
			check: func(t *testing.T, body map[string]any) {
				assert.Equal(t, true, body["valid"])
				assert.Equal(t, map[string]any{"name": "Ann", "email": "ann@example.com", "age": float64(30)}, body["data"])
				assert.Empty(t, body["errors"])
				assert.Empty(t, body["first_errors"])
			},
		},
		{
			name:        "invalid json data",
			form:        "signup",
			contentType: "application/json",
			body:        `{"email":"nope","age":12}`,
			status:      http.StatusUnprocessableEntity,
			check: func(t *testing.T, body map[string]any) {
				assert.Equal(t, false, body["valid"])
				assert.Equal(t, map[string]any{
					"name":  []any{"Field is required"},
					"email": []any{"Incorrect email"},
					"age":   []any{"Too young"},
				}, body["errors"])
				assert.Equal(t, map[string]any{
					"name":  "Field is required",
					"email": "Incorrect email",
					"age":   "Too young",
				}, body["first_errors"])
			},
		},
		{
			name:        "urlencoded body",
			form:        "signup",
			contentType: "application/x-www-form-urlencoded",
			body:        url.Values{"name": {" Bob "}, "email": {"bob@example.com"}, "age": {"21"}}.Encode(),
			status:      http.StatusOK,
			check: func(t *testing.T, body map[string]any) {
				assert.Equal(t, true, body["valid"])
				assert.Equal(t, "Bob", body["data"].(map[string]any)["name"])
			},
		},
		{
			name:        "unknown form",
			form:        "missing",
			contentType: "application/json",
			body:        `{}`,
			status:      http.StatusNotFound,
			check: func(t *testing.T, body map[string]any) {
				assert.Equal(t, api.CodeNotFound, body["error"].(map[string]any)["code"])
			},
		},
		{
			name:        "malformed json",
			form:        "signup",
			contentType: "application/json",
			body:        `{"name":`,
			status:      http.StatusBadRequest,
			check: func(t *testing.T, body map[string]any) {
				assert.Equal(t, api.CodeBadRequest, body["error"].(map[string]any)["code"])
			},
		},
		{
			name:        "unsupported media type",
			form:        "signup",
			contentType: "text/plain",
			body:        "name=Ann",
			status:      http.StatusUnsupportedMediaType,
			check: func(t *testing.T, body map[string]any) {
				assert.Equal(t, api.CodeUnsupportedMediaType, body["error"].(map[string]any)["code"])
			},
		},
		{
			name:        "misconfigured form",
			form:        "broken",
			contentType: "application/json",
			body:        `{"name":"Ann"}`,
			status:      http.StatusInternalServerError,
			check: func(t *testing.T, body map[string]any) {
				detail := body["error"].(map[string]any)
				assert.Equal(t, api.CodeConfiguration, detail["code"])
				assert.Contains(t, detail["message"], "nonexistent")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			h, _ := newTestService(t)
			req := httptest.NewRequest(http.MethodPost, "/forms/"+tt.form+"/validate", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", tt.contentType)

			rec, body := do(t, h, req)
			assert.Equal(t, tt.status, rec.Code, rec.Body.String())
			tt.check(t, body)
		})
	}
}

func TestValidateBodyTooLarge(t *testing.T) {
	t.Parallel()

	h, _ := newTestService(t, api.WithBinder(binder.New(binder.WithMaxBodySize(16))))
	req := httptest.NewRequest(http.MethodPost, "/forms/signup/validate",
		strings.NewReader(`{"name":"a very long name that does not fit"}`))
	req.Header.Set("Content-Type", "application/json")

	rec, body := do(t, h, req)
	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	assert.Equal(t, api.CodeRequestTooLarge, body["error"].(map[string]any)["code"])
}

func TestValidateRecordsMetrics(t *testing.T) {
	t.Parallel()

	h, reg := newTestService(t)

	for _, payload := range []string{`{"name":"Ann","email":"ann@example.com"}`, `{"email":"bad"}`, `{"name":"x"}`} {
		form := "signup"
		if payload == `{"name":"x"}` {
			form = "broken"
		}
		req := httptest.NewRequest(http.MethodPost, "/forms/"+form+"/validate", strings.NewReader(payload))
		req.Header.Set("Content-Type", "application/json")
		do(t, h, req)
	}

	families, err := reg.Gather()
	require.NoError(t, err)

	counts := make(map[string]float64)
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			key := mf.GetName()
			for _, lp := range m.GetLabel() {
				key += "," + lp.GetName() + "=" + lp.GetValue()
			}
			counts[key] = m.GetCounter().GetValue()
		}
	}

	assert.Equal(t, 1.0, counts["formkit_validations_total,form=signup,result=valid"])
	assert.Equal(t, 1.0, counts["formkit_validations_total,form=signup,result=invalid"])
	assert.Equal(t, 1.0, counts["formkit_field_errors_total,field=name,form=signup"])
	assert.Equal(t, 1.0, counts["formkit_configuration_errors_total,form=broken"])

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	out, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, string(out), "formkit_validations_total")
}

func TestHealthz(t *testing.T) {
	t.Parallel()

	t.Run("ready with forms", func(t *testing.T) {
		t.Parallel()
		h, _ := newTestService(t)
		rec, body := do(t, h, httptest.NewRequest(http.MethodGet, "/healthz", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "ready", body["status"])
	})

	t.Run("not ready without forms", func(t *testing.T) {
		t.Parallel()
		cat, err := ruleset.NewCatalog()
		require.NoError(t, err)
		h := api.NewService(cat, validator.Validators(), sanitizer.Filters()).Handle()

		rec, body := do(t, h, httptest.NewRequest(http.MethodGet, "/healthz", nil))
		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
		assert.Equal(t, "not_ready", body["status"])

		rec = httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
