package api

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"gonotes/internal/models"
)

type noteHandlers struct {
	notes  models.NoteStore
	logger *zap.Logger
}

func (h *noteHandlers) fail(w http.ResponseWriter, err error) {
	failWith(w, h.logger, err)
}

func noteID(r *http.Request) (primitive.ObjectID, bool) {
	id, err := primitive.ObjectIDFromHex(mux.Vars(r)["id"])
	return id, err == nil
}

func (h *noteHandlers) addNote(w http.ResponseWriter, r *http.Request) {
	userID, ok := UserIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req struct {
		Title   string   `json:"title"`
		Content string   `json:"content"`
		Tags    []string `json:"tags"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	note, err := h.notes.Create(r.Context(), models.Note{
		Title:   req.Title,
		Content: req.Content,
		Tags:    req.Tags,
		OwnerID: userID,
	})
	if err != nil {
		h.fail(w, err)
		return
	}
	writeOK(w, "Note added successfully", envelope{"note": note})
}

func (h *noteHandlers) editNote(w http.ResponseWriter, r *http.Request) {
	userID, ok := UserIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	id, ok := noteID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "Invalid note id")
		return
	}

	// Pointer fields distinguish an omitted field from one set to a zero
	// value, so {"tags": []} clears tags while {} changes nothing.
	var req struct {
		Title    *string   `json:"title"`
		Content  *string   `json:"content"`
		Tags     *[]string `json:"tags"`
		IsPinned *bool     `json:"isPinned"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	note, err := h.notes.Update(r.Context(), userID, id, models.NotePatch{
		Title:    req.Title,
		Content:  req.Content,
		Tags:     req.Tags,
		IsPinned: req.IsPinned,
	})
	if err != nil {
		h.fail(w, err)
		return
	}
	writeOK(w, "Note updated successfully", envelope{"note": note})
}

func (h *noteHandlers) updatePinned(w http.ResponseWriter, r *http.Request) {
	userID, ok := UserIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	id, ok := noteID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "Invalid note id")
		return
	}

	var req struct {
		IsPinned *bool `json:"isPinned"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if req.IsPinned == nil {
		writeError(w, http.StatusBadRequest, "isPinned is required")
		return
	}

	if err := h.notes.SetPinned(r.Context(), userID, id, *req.IsPinned); err != nil {
		h.fail(w, err)
		return
	}
	writeOK(w, "Note pin updated successfully", nil)
}

func (h *noteHandlers) getAllNotes(w http.ResponseWriter, r *http.Request) {
	userID, ok := UserIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	notes, err := h.notes.ListOwned(r.Context(), userID)
	if err != nil {
		h.fail(w, err)
		return
	}
	writeOK(w, "All notes retrieved successfully", envelope{"notes": notes})
}

func (h *noteHandlers) searchNotes(w http.ResponseWriter, r *http.Request) {
	userID, ok := UserIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	notes, err := h.notes.Search(r.Context(), userID, r.URL.Query().Get("searchQuery"))
	if err != nil {
		h.fail(w, err)
		return
	}
	writeOK(w, "Notes matching the search query retrieved successfully", envelope{"notes": notes})
}

func (h *noteHandlers) deleteNote(w http.ResponseWriter, r *http.Request) {
	userID, ok := UserIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	id, ok := noteID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "Invalid note id")
		return
	}

	if err := h.notes.Delete(r.Context(), userID, id); err != nil {
		h.fail(w, err)
		return
	}
	writeOK(w, "Note deleted successfully", nil)
}
