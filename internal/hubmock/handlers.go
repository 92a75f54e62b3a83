package hubmock

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sort"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// Wire shapes matching HubSpot's CRM v3 responses.

type rawObject struct {
	ID         string            `json:"id"`
	Properties map[string]string `json:"properties"`
	CreatedAt  string            `json:"createdAt"`
	UpdatedAt  string            `json:"updatedAt"`
	Archived   bool              `json:"archived"`
}

type pagingNext struct {
	After string `json:"after"`
}

type paging struct {
	Next *pagingNext `json:"next,omitempty"`
}

type collectionResponse struct {
	Results []rawObject `json:"results"`
	Paging  *paging     `json:"paging,omitempty"`
	Total   int         `json:"total,omitempty"`
}

type apiError struct {
	Status        string `json:"status"`
	Message       string `json:"message"`
	CorrelationID string `json:"correlationId"`
	Category      string `json:"category"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, category, message string) {
	writeJSON(w, status, apiError{
		Status:        "error",
		Message:       message,
		CorrelationID: uuid.NewString(),
		Category:      category,
	})
}

func notFound(w http.ResponseWriter, id string) {
	writeError(w, http.StatusNotFound, "OBJECT_NOT_FOUND",
		fmt.Sprintf("Unable to infer object type from: %s", id))
}

func toRaw(o *object) rawObject {
	return rawObject{
		ID:         o.ID,
		Properties: o.Properties,
		CreatedAt:  o.CreatedAt,
		UpdatedAt:  o.UpdatedAt,
		Archived:   o.Archived,
	}
}

// NewHandler returns the fake API. Requests must carry the given bearer
// token; anything else gets a 401 in HubSpot's error format.
func NewHandler(store *Store, token string) http.Handler {
	h := &handler{store: store, token: token}
	mux := http.NewServeMux()

	mux.HandleFunc("GET /crm/v3/objects/{objectType}", h.listObjects)
	mux.HandleFunc("POST /crm/v3/objects/{objectType}", h.createObject)
	mux.HandleFunc("POST /crm/v3/objects/{objectType}/search", h.searchObjects)
	mux.HandleFunc("GET /crm/v3/objects/{objectType}/{objectId}", h.getObject)
	mux.HandleFunc("PATCH /crm/v3/objects/{objectType}/{objectId}", h.updateObject)
	mux.HandleFunc("DELETE /crm/v3/objects/{objectType}/{objectId}", h.archiveObject)

	mux.HandleFunc("POST /crm/v3/objects/{objectType}/batch/read", h.batchRead)
	mux.HandleFunc("POST /crm/v3/objects/{objectType}/batch/create", h.batchCreate)
	mux.HandleFunc("POST /crm/v3/objects/{objectType}/batch/update", h.batchUpdate)
	mux.HandleFunc("POST /crm/v3/objects/{objectType}/batch/archive", h.batchArchive)

	mux.HandleFunc("PUT /crm/v3/objects/{objectType}/{objectId}/associations/{toObjectType}/{toObjectId}/{associationTypeId}", h.putAssociation)
	mux.HandleFunc("DELETE /crm/v3/objects/{objectType}/{objectId}/associations/{toObjectType}/{toObjectId}/{associationTypeId}", h.deleteAssociation)
	mux.HandleFunc("GET /crm/v3/objects/{objectType}/{objectId}/associations/{toObjectType}", h.listAssociations)

	mux.HandleFunc("GET /crm/v3/pipelines/{objectType}", h.listPipelines)
	mux.HandleFunc("GET /crm/v3/pipelines/{objectType}/{pipelineId}", h.getPipeline)

	mux.HandleFunc("GET /crm/v3/owners", h.listOwners)
	mux.HandleFunc("GET /crm/v3/owners/{ownerId}", h.getOwner)

	return h.auth(mux)
}

type handler struct {
	store *Store
	token string
}

func (h *handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
		if got == "" || got != h.token {
			writeError(w, http.StatusUnauthorized, "INVALID_AUTHENTICATION",
				"Authentication credentials not found or invalid.")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (h *handler) listObjects(w http.ResponseWriter, r *http.Request) {
	objectType := r.PathValue("objectType")
	limit := 10
	if l := r.URL.Query().Get("limit"); l != "" {
		n, err := strconv.Atoi(l)
		if err != nil || n < 1 {
			writeError(w, http.StatusBadRequest, "VALIDATION_ERROR", "limit must be a positive integer")
			return
		}
		limit = n
	}
	objs, next, err := h.store.ListObjects(r.Context(), objectType, limit, r.URL.Query().Get("after"))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
		return
	}
	resp := collectionResponse{Results: make([]rawObject, 0, len(objs))}
	for _, o := range objs {
		resp.Results = append(resp.Results, toRaw(o))
	}
	if next != "" {
		resp.Paging = &paging{Next: &pagingNext{After: next}}
	}
	writeJSON(w, http.StatusOK, resp)
}

type createRequest struct {
	Properties map[string]string `json:"properties"`
}

func (h *handler) createObject(w http.ResponseWriter, r *http.Request) {
	var req createRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "VALIDATION_ERROR", "invalid request body")
		return
	}
	o, err := h.store.CreateObject(r.Context(), r.PathValue("objectType"), req.Properties)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, toRaw(o))
}

func (h *handler) getObject(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("objectId")
	o, err := h.store.GetObject(r.Context(), r.PathValue("objectType"), id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
		return
	}
	if o == nil {
		notFound(w, id)
		return
	}
	writeJSON(w, http.StatusOK, toRaw(o))
}

func (h *handler) updateObject(w http.ResponseWriter, r *http.Request) {
	var req createRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "VALIDATION_ERROR", "invalid request body")
		return
	}
	id := r.PathValue("objectId")
	o, err := h.store.UpdateObject(r.Context(), r.PathValue("objectType"), id, req.Properties)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
		return
	}
	if o == nil {
		notFound(w, id)
		return
	}
	writeJSON(w, http.StatusOK, toRaw(o))
}

func (h *handler) archiveObject(w http.ResponseWriter, r *http.Request) {
	if err := h.store.ArchiveObject(r.Context(), r.PathValue("objectType"), r.PathValue("objectId")); err != nil {
		writeError(w, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *handler) putAssociation(w http.ResponseWriter, r *http.Request) {
	typeID, err := strconv.Atoi(r.PathValue("associationTypeId"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "VALIDATION_ERROR", "association type ID must be numeric")
		return
	}
	err = h.store.Associate(r.Context(),
		r.PathValue("objectType"), r.PathValue("objectId"),
		r.PathValue("toObjectType"), r.PathValue("toObjectId"), typeID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "COMPLETE"})
}

func (h *handler) deleteAssociation(w http.ResponseWriter, r *http.Request) {
	typeID, err := strconv.Atoi(r.PathValue("associationTypeId"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "VALIDATION_ERROR", "association type ID must be numeric")
		return
	}
	err = h.store.Disassociate(r.Context(),
		r.PathValue("objectType"), r.PathValue("objectId"),
		r.PathValue("toObjectType"), r.PathValue("toObjectId"), typeID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *handler) listAssociations(w http.ResponseWriter, r *http.Request) {
	targets, err := h.store.Associations(r.Context(),
		r.PathValue("objectType"), r.PathValue("objectId"), r.PathValue("toObjectType"))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
		return
	}
	type assocResult struct {
		ID   string `json:"id"`
		Type string `json:"type"`
	}
	results := make([]assocResult, 0, len(targets))
	for _, t := range targets {
		results = append(results, assocResult{ID: t.ID, Type: t.Label})
	}
	writeJSON(w, http.StatusOK, map[string]any{"results": results})
}

type rawStage struct {
	ID           string            `json:"id"`
	Label        string            `json:"label"`
	DisplayOrder int               `json:"displayOrder"`
	Metadata     map[string]string `json:"metadata"`
}

type rawPipeline struct {
	ID           string     `json:"id"`
	Label        string     `json:"label"`
	DisplayOrder int        `json:"displayOrder"`
	Stages       []rawStage `json:"stages"`
}

func (h *handler) pipelinesFor(r *http.Request, objectType string) ([]rawPipeline, error) {
	rows, err := h.store.db.QueryContext(r.Context(),
		`SELECT id, label, display_order FROM pipelines WHERE object_type = ? ORDER BY display_order`,
		objectType)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var pipelines []rawPipeline
	for rows.Next() {
		var p rawPipeline
		if err := rows.Scan(&p.ID, &p.Label, &p.DisplayOrder); err != nil {
			return nil, err
		}
		pipelines = append(pipelines, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range pipelines {
		stageRows, err := h.store.db.QueryContext(r.Context(),
			`SELECT id, label, display_order, metadata_probability, metadata_is_closed, metadata_is_won
			 FROM stages WHERE pipeline_id = ?`, pipelines[i].ID)
		if err != nil {
			return nil, err
		}
		for stageRows.Next() {
			var st rawStage
			var prob, closed, won string
			if err := stageRows.Scan(&st.ID, &st.Label, &st.DisplayOrder, &prob, &closed, &won); err != nil {
				stageRows.Close()
				return nil, err
			}
			st.Metadata = map[string]string{}
			if prob != "" {
				st.Metadata["probability"] = prob
			}
			if closed != "" {
				st.Metadata["isClosed"] = closed
			}
			if won != "" {
				st.Metadata["isWon"] = won
			}
			pipelines[i].Stages = append(pipelines[i].Stages, st)
		}
		stageRows.Close()
		if err := stageRows.Err(); err != nil {
			return nil, err
		}
		// Stages come back ordered by ID, not display order, so clients
		// have to sort by displayOrder themselves.
		sort.Slice(pipelines[i].Stages, func(a, b int) bool {
			return pipelines[i].Stages[a].ID < pipelines[i].Stages[b].ID
		})
	}
	return pipelines, nil
}

func (h *handler) listPipelines(w http.ResponseWriter, r *http.Request) {
	pipelines, err := h.pipelinesFor(r, r.PathValue("objectType"))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"results": pipelines})
}

func (h *handler) getPipeline(w http.ResponseWriter, r *http.Request) {
	pipelines, err := h.pipelinesFor(r, r.PathValue("objectType"))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
		return
	}
	want := r.PathValue("pipelineId")
	for _, p := range pipelines {
		if p.ID == want {
			writeJSON(w, http.StatusOK, p)
			return
		}
	}
	notFound(w, want)
}

type rawOwner struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

func (h *handler) listOwners(w http.ResponseWriter, r *http.Request) {
	rows, err := h.store.db.QueryContext(r.Context(),
		`SELECT id, email, first_name, last_name FROM owners ORDER BY id`)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
		return
	}
	defer rows.Close()

	var owners []rawOwner
	for rows.Next() {
		var o rawOwner
		if err := rows.Scan(&o.ID, &o.Email, &o.FirstName, &o.LastName); err != nil {
			writeError(w, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
			return
		}
		owners = append(owners, o)
	}
	writeJSON(w, http.StatusOK, map[string]any{"results": owners})
}

func (h *handler) getOwner(w http.ResponseWriter, r *http.Request) {
	var o rawOwner
	err := h.store.db.QueryRowContext(r.Context(),
		`SELECT id, email, first_name, last_name FROM owners WHERE id = ?`,
		r.PathValue("ownerId")).Scan(&o.ID, &o.Email, &o.FirstName, &o.LastName)
	if err != nil {
		notFound(w, r.PathValue("ownerId"))
		return
	}
	writeJSON(w, http.StatusOK, o)
}
