package server

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"arcana/internal/config"
	"arcana/internal/database"
	"arcana/internal/generation"
	"arcana/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const testJWTSecret = "test-secret-key-12345678901234567890123456789012"

type providerStub struct {
	resp generation.Response
	err  error
}

func (p *providerStub) Generate(ctx context.Context, req generation.Request) (generation.Response, error) {
	return p.resp, p.err
}

func newTestServer(t *testing.T, provider generation.Provider) (*Server, *fiber.App) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	cfg := &config.Config{
		JWTSecret:    testJWTSecret,
		AdminUserIDs: "admin-uid",
	}
	if provider == nil {
		provider = &providerStub{resp: generation.Response{Text: "무난한 하루가 되겠습니다."}}
	}
	srv := NewServerWithDeps(cfg, db, nil, provider)
	t.Cleanup(func() { srv.scheduler.Close() })

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return models.RespondWithError(c, err)
		},
	})
	srv.SetupRoutes(app)
	return srv, app
}

func tokenFor(t *testing.T, uid, name string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  uid,
		"name": name,
		"exp":  time.Now().Add(time.Hour).Unix(),
	})
	s, err := token.SignedString([]byte(testJWTSecret))
	require.NoError(t, err)
	return s
}

func doJSON(t *testing.T, app *fiber.App, method, path, token string, body interface{}) *http.Response {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response, dest interface{}) {
	t.Helper()
	defer func() { _ = resp.Body.Close() }()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(dest))
}

func TestPostLifecycle(t *testing.T) {
	_, app := newTestServer(t, nil)
	owner := tokenFor(t, "uid-owner", "글쓴이")

	resp := doJSON(t, app, http.MethodPost, "/api/posts", owner, fiber.Map{
		"title":    "오늘의 리딩",
		"content":  "연애운 리딩 공유합니다",
		"category": models.CategoryFreeDiscussion,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var createBody successResponse
	decodeBody(t, resp, &createBody)
	require.True(t, createBody.Success)
	require.NotEmpty(t, createBody.ID)
	postID := createBody.ID

	resp = doJSON(t, app, http.MethodGet, "/api/posts/"+postID, "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var post models.Post
	decodeBody(t, resp, &post)
	assert.Equal(t, "오늘의 리딩", post.Title)
	assert.Equal(t, "uid-owner", post.AuthorID)

	resp = doJSON(t, app, http.MethodGet, "/api/posts/?category="+models.CategoryFreeDiscussion, "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var page models.PostPage
	decodeBody(t, resp, &page)
	assert.Len(t, page.Posts, 1)
	assert.Equal(t, 1, page.TotalPages)

	// A stranger cannot delete the post.
	stranger := tokenFor(t, "uid-stranger", "지나가던 사람")
	resp = doJSON(t, app, http.MethodDelete, "/api/posts/"+postID, stranger, nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	_ = resp.Body.Close()

	resp = doJSON(t, app, http.MethodDelete, "/api/posts/"+postID, owner, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	_ = resp.Body.Close()

	resp = doJSON(t, app, http.MethodGet, "/api/posts/"+postID, "", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	_ = resp.Body.Close()
}

func TestCreatePost_RequiresAuth(t *testing.T) {
	_, app := newTestServer(t, nil)

	resp := doJSON(t, app, http.MethodPost, "/api/posts", "", fiber.Map{
		"title": "t", "content": "c", "category": models.CategoryFreeDiscussion,
	})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	_ = resp.Body.Close()
}

func TestCreatePost_ValidationSurfacesFields(t *testing.T) {
	_, app := newTestServer(t, nil)
	token := tokenFor(t, "uid-1", "u")

	resp := doJSON(t, app, http.MethodPost, "/api/posts", token, fiber.Map{
		"title": "", "content": "", "category": "bogus",
	})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var body models.ErrorResponse
	decodeBody(t, resp, &body)
	assert.False(t, body.Success)
	assert.Equal(t, models.CodeValidation, body.Code)
	assert.Contains(t, body.Fields, "title")
}

func TestCommentFlow(t *testing.T) {
	_, app := newTestServer(t, nil)
	owner := tokenFor(t, "uid-owner", "글쓴이")
	commenter := tokenFor(t, "uid-commenter", "댓글러")

	resp := doJSON(t, app, http.MethodPost, "/api/posts", owner, fiber.Map{
		"title": "질문 있어요", "content": "내용", "category": models.CategoryQAndA,
	})
	var createBody successResponse
	decodeBody(t, resp, &createBody)
	postID := createBody.ID

	resp = doJSON(t, app, http.MethodPost, "/api/posts/"+postID+"/comments", commenter, fiber.Map{
		"content": "저도 궁금합니다",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var commentBody successResponse
	decodeBody(t, resp, &commentBody)

	resp = doJSON(t, app, http.MethodGet, "/api/posts/"+postID, "", nil)
	var post models.Post
	decodeBody(t, resp, &post)
	assert.Equal(t, 1, post.CommentCount)

	// Only the comment author may edit it.
	resp = doJSON(t, app, http.MethodPut,
		"/api/posts/"+postID+"/comments/"+commentBody.ID, owner, fiber.Map{"content": "수정"})
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	_ = resp.Body.Close()

	resp = doJSON(t, app, http.MethodDelete,
		"/api/posts/"+postID+"/comments/"+commentBody.ID, commenter, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	_ = resp.Body.Close()

	resp = doJSON(t, app, http.MethodGet, "/api/posts/"+postID, "", nil)
	decodeBody(t, resp, &post)
	assert.Equal(t, 0, post.CommentCount)
}

func TestReadingEndpoints(t *testing.T) {
	_, app := newTestServer(t, nil)
	token := tokenFor(t, "uid-reader", "리더")

	resp := doJSON(t, app, http.MethodPost, "/api/readings", token, fiber.Map{
		"question":         "이직해도 될까요?",
		"spread_name":      "three-card",
		"spread_num_cards": 3,
		"drawn_cards": []fiber.Map{
			{"card_id": "major-0", "position": "past"},
			{"card_id": "major-16", "is_reversed": true, "position": "present"},
			{"card_id": "major-21", "position": "future"},
		},
		"interpretation_text": "긍정적인 흐름입니다.",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var saveBody successResponse
	decodeBody(t, resp, &saveBody)

	resp = doJSON(t, app, http.MethodGet, "/api/readings/", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var readings []*models.SavedReading
	decodeBody(t, resp, &readings)
	require.Len(t, readings, 1)
	assert.Equal(t, "탑 (The Tower)", readings[0].DrawnCards[1].Name)

	// Readings are private to their owner.
	other := tokenFor(t, "uid-other", "남")
	resp = doJSON(t, app, http.MethodDelete, "/api/readings/"+saveBody.ID, other, nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	_ = resp.Body.Close()

	resp = doJSON(t, app, http.MethodDelete, "/api/readings/"+saveBody.ID, token, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	_ = resp.Body.Close()
}

func TestGenerateTarot_GuestAllowed(t *testing.T) {
	_, app := newTestServer(t, &providerStub{
		resp: generation.Response{Text: "새로운 시작의 기운이 보입니다."},
	})

	resp := doJSON(t, app, http.MethodPost, "/api/generate/tarot", "", fiber.Map{
		"question":             "올해 운세가 궁금해요",
		"card_spread":          "원 카드",
		"card_interpretations": "광대 (정방향)",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var result generation.Result
	decodeBody(t, resp, &result)
	assert.Equal(t, "새로운 시작의 기운이 보입니다.", result.Interpretation)
}

func TestGenerateDream_ProviderFailureAbsorbed(t *testing.T) {
	_, app := newTestServer(t, &providerStub{
		err: fmt.Errorf("status code 429: rate limit exceeded"),
	})

	resp := doJSON(t, app, http.MethodPost, "/api/generate/dream", "", fiber.Map{
		"dream_description": "높은 곳에서 떨어지는 꿈을 꿨어요",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var result generation.Result
	decodeBody(t, resp, &result)
	assert.Contains(t, result.Interpretation, "요청이 많아")
}

func TestAdminPromptConfig(t *testing.T) {
	_, app := newTestServer(t, nil)
	admin := tokenFor(t, "admin-uid", "관리자")
	user := tokenFor(t, "uid-1", "일반인")

	resp := doJSON(t, app, http.MethodPut, "/api/admin/prompts/tarot", user, fiber.Map{
		"template": "{{{question}}}",
	})
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	_ = resp.Body.Close()

	resp = doJSON(t, app, http.MethodPut, "/api/admin/prompts/tarot", admin, fiber.Map{
		"template": "{{{question}}}",
		"model":    "gpt-4o",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	_ = resp.Body.Close()

	resp = doJSON(t, app, http.MethodGet, "/api/admin/prompts/tarot", admin, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var cfg models.PromptConfig
	decodeBody(t, resp, &cfg)
	assert.Equal(t, "gpt-4o", cfg.Model)

	resp = doJSON(t, app, http.MethodGet, "/api/admin/prompts/dream", admin, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	_ = resp.Body.Close()
}
