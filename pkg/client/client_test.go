package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDashboard(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)
		require.Equal(t, "/teacher/dashboard", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"teacher": {"id": 1, "name": "Maria", "email": "maria@example.com"},
			"classes": [
				{"id": 1, "title": "Physics", "students": [
					{"id": 10, "name": "Ada", "email": "ada@example.com", "age": 16, "averageScore": 80, "classId": 1}
				], "avgScore": 80}
			],
			"totalStudents": 1
		}`))
	}))
	defer srv.Close()

	api := New(srv.URL)
	dash, err := api.LoadDashboard(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Maria", dash.Teacher.Name)
	assert.Equal(t, 1, dash.TotalStudents)
	require.Len(t, dash.Classes, 1)
	assert.Equal(t, 80.0, dash.Classes[0].AvgScore)
	require.Len(t, dash.Classes[0].Students, 1)
	assert.Equal(t, int64(1), dash.Classes[0].Students[0].ClassID)
}

func TestCreateClassSendsPayload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/teacher/class", r.URL.Path)
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "Algebra", body["title"])
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id": 7, "title": "Algebra", "students": [], "avgScore": 0}`))
	}))
	defer srv.Close()

	api := New(srv.URL)
	created, err := api.CreateClass(context.Background(), CreateClassInput{Title: "Algebra"})
	require.NoError(t, err)
	assert.Equal(t, int64(7), created.ID)
	assert.NotNil(t, created.Students)
}

func TestDeleteClassReturnsMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodDelete, r.Method)
		require.Equal(t, "/teacher/class/3", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"message": "class deleted"}`))
	}))
	defer srv.Close()

	api := New(srv.URL)
	msg, err := api.DeleteClass(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, "class deleted", msg)
}

func TestServerMessagePassedThroughVerbatim(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"code": "VALIDATION_ERROR", "message": "title is required", "status": 400}`))
	}))
	defer srv.Close()

	api := New(srv.URL)
	_, err := api.CreateClass(context.Background(), CreateClassInput{})
	require.Error(t, err)
	assert.True(t, IsValidation(err))
	assert.Equal(t, "title is required", err.Error())
}

func TestErrorClassificationByStatus(t *testing.T) {
	tests := []struct {
		name   string
		status int
		kind   Kind
	}{
		{"unauthorized", http.StatusUnauthorized, KindAuth},
		{"forbidden", http.StatusForbidden, KindAuth},
		{"not found", http.StatusNotFound, KindNotFound},
		{"bad request", http.StatusBadRequest, KindValidation},
		{"conflict", http.StatusConflict, KindValidation},
		{"server error", http.StatusInternalServerError, KindServer},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
				_, _ = w.Write([]byte(`{"message": "nope"}`))
			}))
			defer srv.Close()

			api := New(srv.URL)
			_, err := api.GetProfile(context.Background())
			require.Error(t, err)
			assert.Equal(t, tc.kind, KindOf(err))
		})
	}
}

func TestNetworkFailureHasFixedMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	api := New(srv.URL)
	_, err := api.LoadDashboard(context.Background())
	require.Error(t, err)
	assert.True(t, IsNetwork(err))
	assert.True(t, strings.HasPrefix(err.Error(), "unable to reach server"))
}

func TestErrorBodyWithoutMessageFallsBack(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	api := New(srv.URL)
	_, err := api.GetProfile(context.Background())
	require.Error(t, err)
	assert.Equal(t, "request failed", err.Error())
}

func TestLoginKeepsSessionCookie(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/teacher/login":
			http.SetCookie(w, &http.Cookie{Name: "classboard_session", Value: "token", Path: "/", HttpOnly: true})
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"teacher": {"id": 1, "name": "Maria", "email": "maria@example.com"}}`))
		case "/teacher/profile":
			cookie, err := r.Cookie("classboard_session")
			if err != nil || cookie.Value != "token" {
				w.WriteHeader(http.StatusUnauthorized)
				_, _ = w.Write([]byte(`{"message": "authentication required"}`))
				return
			}
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"id": 1, "name": "Maria", "email": "maria@example.com"}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	api := New(srv.URL)
	teacher, err := api.Login(context.Background(), Credentials{Email: "maria@example.com", Password: "secret"})
	require.NoError(t, err)
	assert.Equal(t, "Maria", teacher.Name)

	profile, err := api.GetProfile(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "maria@example.com", profile.Email)
}

func TestUploadAvatarSendsMultipart(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPut, r.Method)
		require.Equal(t, "/teacher/profile/upload", r.URL.Path)
		file, header, err := r.FormFile("file")
		require.NoError(t, err)
		defer file.Close() //nolint:errcheck
		assert.Equal(t, "avatar.png", header.Filename)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id": 1, "name": "Maria", "email": "maria@example.com", "profilePicture": "/uploads/avatars/1.png"}`))
	}))
	defer srv.Close()

	api := New(srv.URL)
	profile, err := api.UploadAvatar(context.Background(), "avatar.png", strings.NewReader("fake image bytes"))
	require.NoError(t, err)
	assert.Equal(t, "/uploads/avatars/1.png", profile.ProfilePicture)
}

func TestSubmitQuestionPaper(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/teacher/question-paper", r.URL.Path)
		var body QuestionPaperSubmission
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Len(t, body.Questions, 1)
		assert.Equal(t, "Basic", body.Questions[0].Section)
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"message": "question paper created", "id": 5}`))
	}))
	defer srv.Close()

	api := New(srv.URL)
	err := api.SubmitQuestionPaper(context.Background(), QuestionPaperSubmission{Questions: []QuestionInput{
		{Text: "q", Options: []string{"a", "b", "c", "d"}, CorrectAnswer: "A", Section: "Basic"},
	}})
	require.NoError(t, err)
}

func TestRestoreSessionUnauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/teacher/session", r.URL.Path)
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"message": "no active session"}`))
	}))
	defer srv.Close()

	api := New(srv.URL)
	_, err := api.RestoreSession(context.Background())
	require.Error(t, err)
	assert.True(t, IsAuth(err))
	assert.Equal(t, "no active session", err.Error())
}
