package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"gonotes/internal/auth"
	"gonotes/internal/mocks"
	"gonotes/internal/models"
)

type routerFixture struct {
	users   *mocks.UserStore
	notes   *mocks.NoteStore
	tokens  *mocks.TokenManager
	mailer  *mocks.Mailer
	handler http.Handler
	userID  primitive.ObjectID
}

// newRouterFixture builds the full router with a token manager that accepts
// the bearer token "good" for a fixed user.
func newRouterFixture() *routerFixture {
	f := &routerFixture{
		users:  &mocks.UserStore{},
		notes:  &mocks.NoteStore{},
		tokens: &mocks.TokenManager{},
		mailer: &mocks.Mailer{},
		userID: primitive.NewObjectID(),
	}
	f.tokens.On("Verify", "good").Return(f.userID, nil)
	svc := auth.NewService(f.users, f.tokens, f.mailer, zap.NewNop())
	f.handler = NewRouter(svc, f.notes, f.tokens, zap.NewNop())
	return f
}

func (f *routerFixture) do(t *testing.T, method, path, body string) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("{}")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Authorization", "Bearer good")
	rec := httptest.NewRecorder()
	f.handler.ServeHTTP(rec, req)

	decoded := map[string]interface{}{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &decoded))
	return rec, decoded
}

func TestAddNote_Success(t *testing.T) {
	f := newRouterFixture()
	created := &models.Note{ID: primitive.NewObjectID(), Title: "T", Content: "C", Tags: []string{}, OwnerID: f.userID}
	f.notes.On("Create", mock.Anything, mock.MatchedBy(func(n models.Note) bool {
		return n.Title == "T" && n.Content == "C" && n.OwnerID == f.userID
	})).Return(created, nil)

	rec, body := f.do(t, http.MethodPost, "/add-note", `{"title":"T","content":"C"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, false, body["error"])
	assert.NotNil(t, body["note"])
}

func TestAddNote_MissingTitle(t *testing.T) {
	f := newRouterFixture()
	f.notes.On("Create", mock.Anything, mock.Anything).
		Return(nil, models.ErrValidation)

	rec, body := f.do(t, http.MethodPost, "/add-note", `{"content":"C"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, true, body["error"])
}

func TestAddNote_RequiresToken(t *testing.T) {
	f := newRouterFixture()

	req := httptest.NewRequest(http.MethodPost, "/add-note", strings.NewReader(`{"title":"T","content":"C"}`))
	rec := httptest.NewRecorder()
	f.handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	f.notes.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestEditNote_EmptyPatch(t *testing.T) {
	f := newRouterFixture()
	noteID := primitive.NewObjectID()
	f.notes.On("Update", mock.Anything, f.userID, noteID, mock.MatchedBy(func(p models.NotePatch) bool {
		return p.Empty()
	})).Return(nil, models.ErrNoChanges)

	rec, body := f.do(t, http.MethodPut, "/edit-note/"+noteID.Hex(), `{}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, true, body["error"])
}

func TestEditNote_EmptyTagsIsStillAnUpdate(t *testing.T) {
	f := newRouterFixture()
	noteID := primitive.NewObjectID()
	updated := &models.Note{ID: noteID, Title: "T", Content: "C", Tags: []string{}, OwnerID: f.userID}
	// {"tags": []} must reach the store as a present-but-empty field, not be
	// dropped like an omitted one.
	f.notes.On("Update", mock.Anything, f.userID, noteID, mock.MatchedBy(func(p models.NotePatch) bool {
		return p.Tags != nil && len(*p.Tags) == 0 && p.Title == nil && p.Content == nil && p.IsPinned == nil
	})).Return(updated, nil)

	rec, body := f.do(t, http.MethodPut, "/edit-note/"+noteID.Hex(), `{"tags":[]}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, false, body["error"])
}

func TestEditNote_NotOwned(t *testing.T) {
	f := newRouterFixture()
	noteID := primitive.NewObjectID()
	f.notes.On("Update", mock.Anything, f.userID, noteID, mock.Anything).Return(nil, models.ErrNotFound)

	rec, _ := f.do(t, http.MethodPut, "/edit-note/"+noteID.Hex(), `{"title":"X"}`)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestEditNote_BadID(t *testing.T) {
	f := newRouterFixture()

	rec, _ := f.do(t, http.MethodPut, "/edit-note/not-an-id", `{"title":"X"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdatePinned_FalseIsApplied(t *testing.T) {
	f := newRouterFixture()
	noteID := primitive.NewObjectID()
	f.notes.On("SetPinned", mock.Anything, f.userID, noteID, false).Return(nil)

	rec, body := f.do(t, http.MethodPut, "/update-note-pinned/"+noteID.Hex(), `{"isPinned":false}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, false, body["error"])
	f.notes.AssertCalled(t, "SetPinned", mock.Anything, f.userID, noteID, false)
}

func TestUpdatePinned_MissingField(t *testing.T) {
	f := newRouterFixture()
	noteID := primitive.NewObjectID()

	rec, _ := f.do(t, http.MethodPut, "/update-note-pinned/"+noteID.Hex(), `{}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	f.notes.AssertNotCalled(t, "SetPinned", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestGetAllNotes_ReturnsStoreOrder(t *testing.T) {
	f := newRouterFixture()
	notes := []models.Note{
		{ID: primitive.NewObjectID(), Title: "pinned", IsPinned: true, OwnerID: f.userID},
		{ID: primitive.NewObjectID(), Title: "plain", OwnerID: f.userID},
	}
	f.notes.On("ListOwned", mock.Anything, f.userID).Return(notes, nil)

	rec, body := f.do(t, http.MethodGet, "/get-all-notes", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	got, ok := body["notes"].([]interface{})
	require.True(t, ok)
	require.Len(t, got, 2)
	first, ok := got[0].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "pinned", first["title"])
}

func TestSearchNotes_EmptyQuery(t *testing.T) {
	f := newRouterFixture()
	f.notes.On("Search", mock.Anything, f.userID, "").Return(nil, models.ErrValidation)

	rec, _ := f.do(t, http.MethodGet, "/search-notes", "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSearchNotes_PassesQuery(t *testing.T) {
	f := newRouterFixture()
	f.notes.On("Search", mock.Anything, f.userID, "gym").Return([]models.Note{
		{ID: primitive.NewObjectID(), Title: "Go to gym at 5", OwnerID: f.userID},
	}, nil)

	rec, body := f.do(t, http.MethodGet, "/search-notes?searchQuery=gym", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	got, ok := body["notes"].([]interface{})
	require.True(t, ok)
	assert.Len(t, got, 1)
}

func TestDeleteNote_NotOwned(t *testing.T) {
	f := newRouterFixture()
	noteID := primitive.NewObjectID()
	f.notes.On("Delete", mock.Anything, f.userID, noteID).Return(models.ErrNotFound)

	rec, _ := f.do(t, http.MethodDelete, "/delete-note/"+noteID.Hex(), "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDeleteNote_Success(t *testing.T) {
	f := newRouterFixture()
	noteID := primitive.NewObjectID()
	f.notes.On("Delete", mock.Anything, f.userID, noteID).Return(nil)

	rec, body := f.do(t, http.MethodDelete, "/delete-note/"+noteID.Hex(), "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, false, body["error"])
}
