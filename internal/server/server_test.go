package server

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sakila-backend/internal/config"
	"sakila-backend/internal/repository"
	"sakila-backend/internal/services"
	"sakila-backend/internal/validation"
)

type envelope struct {
	Status string          `json:"status"`
	Data   json.RawMessage `json:"data"`
	Error  struct {
		Code    int    `json:"code"`
		Msg     string `json:"msg"`
		Details []struct {
			Field   string `json:"field"`
			Message string `json:"message"`
		} `json:"details"`
	} `json:"error"`
}

type stubHealth struct{ err error }

func (s stubHealth) HealthCheck() error { return s.err }

func newTestApp(t *testing.T, mutate func(*Dependencies)) *fiber.App {
	t.Helper()

	cfg, err := config.Load()
	require.NoError(t, err)
	cfg.RateLimit.Enabled = false

	logger, _ := logtest.NewNullLogger()
	deps := Dependencies{
		Config:    cfg,
		Logger:    logger,
		Validator: validation.New(validation.Options{ActorNameMin: cfg.Validation.ActorNameMin, ActorNameMax: cfg.Validation.ActorNameMax}),
		Actors:    services.NewActorService(repository.NewMemoryActorRepository(), logger),
		Films:     services.NewFilmService(repository.NewMemoryFilmRepository(), logger),
	}
	if mutate != nil {
		mutate(&deps)
	}
	return New(deps)
}

func do(t *testing.T, app *fiber.App, method, target, body string) (*http.Response, envelope) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var env envelope
	if len(raw) > 0 && strings.HasPrefix(resp.Header.Get(fiber.HeaderContentType), fiber.MIMEApplicationJSON) {
		require.NoError(t, json.Unmarshal(raw, &env), string(raw))
	}
	return resp, env
}

const validActor = `{"first_name":"Nguyen Duc","last_name":"Hoa 21424019"}`

const validFilm = `{
	"title": "The Film Title",
	"description": "Description of the film 10",
	"release_year": 2023,
	"language_id": 1,
	"original_language_id": 2,
	"rental_duration": 5,
	"rental_rate": 7.99,
	"length": 120,
	"replacement_cost": 24.99,
	"rating": "PG-13",
	"special_features": ["Trailers", "Deleted Scenes"]
}`

func TestActors_CreateAndFetch(t *testing.T) {
	app := newTestApp(t, nil)

	resp, env := do(t, app, http.MethodPost, "/api/actors", validActor)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, "success", env.Status)

	var actor struct {
		ActorID    *int   `json:"actor_id"`
		FirstName  string `json:"first_name"`
		LastName   string `json:"last_name"`
		LastUpdate string `json:"last_update"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &actor))
	require.NotNil(t, actor.ActorID)
	assert.Equal(t, "Nguyen Duc", actor.FirstName)
	assert.NotEmpty(t, actor.LastUpdate)

	resp, env = do(t, app, http.MethodGet, "/api/actors/"+strconv.Itoa(*actor.ActorID), "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(env.Data), `"last_name":"Hoa 21424019"`)

	resp, env = do(t, app, http.MethodPost, "/api/actors", validActor)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var second struct {
		ActorID int `json:"actor_id"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &second))
	assert.NotEqual(t, *actor.ActorID, second.ActorID)
}

func TestActors_ListEmpty(t *testing.T) {
	app := newTestApp(t, nil)

	resp, env := do(t, app, http.MethodGet, "/api/actors", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `[]`, string(env.Data))
}

func TestActors_ValidationFailure(t *testing.T) {
	app := newTestApp(t, nil)

	resp, env := do(t, app, http.MethodPost, "/api/actors", `{"first_name":"Al","last_name":"Pacino"}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "fail", env.Status)
	assert.Equal(t, http.StatusBadRequest, env.Error.Code)
	assert.Contains(t, env.Error.Msg, "The first name is too short")
	require.NotEmpty(t, env.Error.Details)
	assert.Equal(t, "first_name", env.Error.Details[0].Field)

	_, env = do(t, app, http.MethodGet, "/api/actors", "")
	assert.JSONEq(t, `[]`, string(env.Data), "nothing persisted")
}

func TestActors_MissingFields(t *testing.T) {
	app := newTestApp(t, nil)

	resp, env := do(t, app, http.MethodPost, "/api/actors", `{}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "The first name is required; The last name is required", env.Error.Msg)
}

func TestActors_NotFoundAndMalformed(t *testing.T) {
	app := newTestApp(t, nil)

	resp, env := do(t, app, http.MethodGet, "/api/actors/999999", "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, http.StatusNotFound, env.Error.Code)
	assert.Equal(t, "Not found actor", env.Error.Msg)

	for _, id := range []string{"abc", "1.5", "-3", "0"} {
		resp, env = do(t, app, http.MethodGet, "/api/actors/"+id, "")
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode, id)
		assert.Equal(t, "The actor_id must be a numeric", env.Error.Msg, id)
	}

	resp, _ = do(t, app, http.MethodDelete, "/api/actors/abc", "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestActors_DeleteTwice(t *testing.T) {
	app := newTestApp(t, nil)

	do(t, app, http.MethodPost, "/api/actors", validActor)
	_, env := do(t, app, http.MethodPost, "/api/actors", validActor)
	var created struct {
		ActorID int `json:"actor_id"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &created))

	resp, _ := do(t, app, http.MethodDelete, "/api/actors/"+strconv.Itoa(created.ActorID), "")
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp, env = do(t, app, http.MethodDelete, "/api/actors/"+strconv.Itoa(created.ActorID), "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Not found actor", env.Error.Msg)

	_, env = do(t, app, http.MethodGet, "/api/actors", "")
	var list []map[string]interface{}
	require.NoError(t, json.Unmarshal(env.Data, &list))
	assert.Len(t, list, 1)
}

func TestActors_InvalidBody(t *testing.T) {
	app := newTestApp(t, nil)

	resp, env := do(t, app, http.MethodPost, "/api/actors", `{"first_name":`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Invalid request body", env.Error.Msg)

	resp, env = do(t, app, http.MethodPost, "/api/actors", `{"first_name":12345678901,"last_name":"Hoa 21424019"}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "first_name must be a string", env.Error.Msg)
}

func TestFilms_Lifecycle(t *testing.T) {
	app := newTestApp(t, nil)

	resp, env := do(t, app, http.MethodPost, "/api/films", validFilm)
	require.Equal(t, http.StatusCreated, resp.StatusCode, env.Error.Msg)

	var film map[string]interface{}
	require.NoError(t, json.Unmarshal(env.Data, &film))
	id := strconv.Itoa(int(film["film_id"].(float64)))
	assert.Equal(t, "PG-13", film["rating"])
	assert.Equal(t, "7.99", film["rental_rate"])
	assert.Equal(t, []interface{}{"Trailers", "Deleted Scenes"}, film["special_features"])

	resp, env = do(t, app, http.MethodPatch, "/api/films/"+id, `{"rating":"R","rental_rate":2.5}`)
	require.Equal(t, http.StatusOK, resp.StatusCode, env.Error.Msg)
	require.NoError(t, json.Unmarshal(env.Data, &film))
	assert.Equal(t, "R", film["rating"])
	assert.Equal(t, "2.5", film["rental_rate"])
	assert.Equal(t, "The Film Title", film["title"])

	resp, env = do(t, app, http.MethodGet, "/api/films/"+id, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(env.Data), `"rating":"R"`)

	resp, _ = do(t, app, http.MethodDelete, "/api/films/"+id, "")
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp, env = do(t, app, http.MethodGet, "/api/films/"+id, "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Not found film", env.Error.Msg)
}

type detail struct {
	Field   string
	Message string
}

func TestFilms_Rejections(t *testing.T) {
	app := newTestApp(t, nil)

	tests := []struct {
		name     string
		replaces [][2]string
		want     []detail
	}{
		{
			name:     "rating_outside_enum",
			replaces: [][2]string{{`"rating": "PG-13"`, `"rating": "FG"`}},
			want:     []detail{{"rating", "rating must be one of the following values: G, PG, PG-13, R, NC-17"}},
		},
		{
			name:     "special_feature_outside_set",
			replaces: [][2]string{{`"Deleted Scenes"]`, `"Bloopers"]`}},
			want: []detail{{
				"special_features",
				"each value in special_features must be one of the following values: Trailers, Commentaries, Deleted Scenes, Behind the Scenes",
			}},
		},
		{
			name:     "title_too_short",
			replaces: [][2]string{{`"The Film Title"`, `"Short"`}},
			want:     []detail{{"title", "Minimum: 10 characters"}},
		},
		{
			name:     "language_not_numeric",
			replaces: [][2]string{{`"language_id": 1`, `"language_id": "x"`}},
			want:     []detail{{"language_id", "language_id must be an integer number"}},
		},
		{
			name:     "rate_not_numeric",
			replaces: [][2]string{{`"rental_rate": 7.99`, `"rental_rate": "cheap"`}},
			want:     []detail{{"rental_rate", "rental_rate must be a number conforming to the specified constraints"}},
		},
		{
			name: "every_mistyped_field_reported",
			replaces: [][2]string{
				{`"language_id": 1`, `"language_id": "x"`},
				{`"rental_duration": 5`, `"rental_duration": "y"`},
				{`"special_features": ["Trailers", "Deleted Scenes"]`, `"special_features": "Trailers"`},
			},
			want: []detail{
				{"language_id", "language_id must be an integer number"},
				{"rental_duration", "rental_duration must be an integer number"},
				{"special_features", "special_features must be an array"},
			},
		},
		{
			name: "mistyped_and_invalid_fields_together",
			replaces: [][2]string{
				{`"The Film Title"`, `"Short"`},
				{`"length": 120`, `"length": "long"`},
				{`"rating": "PG-13"`, `"rating": "FG"`},
			},
			want: []detail{
				{"title", "Minimum: 10 characters"},
				{"length", "length must be an integer number"},
				{"rating", "rating must be one of the following values: G, PG, PG-13, R, NC-17"},
			},
		},
		{
			name:     "release_year_out_of_range",
			replaces: [][2]string{{`"release_year": 2023`, `"release_year": 9999999999`}},
			want:     []detail{{"release_year", "release_year must not be greater than 2155"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body := validFilm
			for _, r := range tt.replaces {
				next := strings.Replace(body, r[0], r[1], 1)
				require.NotEqual(t, body, next, r[0])
				body = next
			}

			resp, env := do(t, app, http.MethodPost, "/api/films", body)
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

			got := make([]detail, 0, len(env.Error.Details))
			for _, d := range env.Error.Details {
				got = append(got, detail{d.Field, d.Message})
			}
			assert.Equal(t, tt.want, got)
		})
	}

	_, env := do(t, app, http.MethodGet, "/api/films", "")
	assert.JSONEq(t, `[]`, string(env.Data))
}

func TestFilms_PatchReportsEveryMistypedField(t *testing.T) {
	app := newTestApp(t, nil)

	resp, env := do(t, app, http.MethodPatch, "/api/films/1", `{"Rental_Rate":"cheap","length":"long"}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	require.Len(t, env.Error.Details, 2)
	assert.Equal(t, "rental_rate", env.Error.Details[0].Field)
	assert.Equal(t, "length", env.Error.Details[1].Field)
	assert.Equal(t, "rental_rate must be a number conforming to the specified constraints; length must be an integer number", env.Error.Msg)
}

func TestFilms_BodyMustBeAnObject(t *testing.T) {
	app := newTestApp(t, nil)

	for _, body := range []string{`[]`, `"film"`, `{"title":`} {
		resp, env := do(t, app, http.MethodPost, "/api/films", body)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode, body)
		assert.Equal(t, "Invalid request body", env.Error.Msg, body)
	}
}

func TestFilms_PatchMissingAndInvalid(t *testing.T) {
	app := newTestApp(t, nil)

	resp, env := do(t, app, http.MethodPatch, "/api/films/424242", `{"rating":"G"}`)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Not found film", env.Error.Msg)

	resp, env = do(t, app, http.MethodPatch, "/api/films/424242", `{"rating":"XYZ"}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "rating", env.Error.Details[0].Field)

	resp, env = do(t, app, http.MethodPatch, "/api/films/nope", `{"rating":"G"}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "The film_id must be a numeric", env.Error.Msg)
}

func TestUnknownRoute(t *testing.T) {
	app := newTestApp(t, nil)

	resp, env := do(t, app, http.MethodGet, "/api/directors", "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "fail", env.Status)
	assert.Equal(t, http.StatusNotFound, env.Error.Code)
}

func TestHealth(t *testing.T) {
	resp, _ := do(t, newTestApp(t, nil), http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	down := newTestApp(t, func(d *Dependencies) { d.Health = stubHealth{err: errors.New("dial tcp: refused")} })
	resp, _ = do(t, down, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
}

func TestMetricsEndpoint(t *testing.T) {
	app := newTestApp(t, nil)
	do(t, app, http.MethodGet, "/api/actors", "")

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/metrics", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(raw), "sakila_api_requests_total")
	assert.Contains(t, string(raw), "sakila_api_entity_operations_total")
}

func TestRateLimit(t *testing.T) {
	app := newTestApp(t, func(d *Dependencies) {
		d.Config.RateLimit = config.RateLimitConfig{Enabled: true, RPS: 0.001, Burst: 1}
	})

	resp, _ := do(t, app, http.MethodGet, "/api/actors", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, env := do(t, app, http.MethodGet, "/api/actors", "")
	assert.Equal(t, http.StatusTooManyRequests, resp.StatusCode)
	assert.Equal(t, "Rate limit exceeded", env.Error.Msg)
}
