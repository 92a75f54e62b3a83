package hubmock

import (
	"encoding/json"
	"net/http"
)

type batchIDInput struct {
	ID string `json:"id"`
}

type batchReadRequest struct {
	Inputs     []batchIDInput `json:"inputs"`
	Properties []string       `json:"properties,omitempty"`
}

type batchCreateRequest struct {
	Inputs []createRequest `json:"inputs"`
}

type batchUpdateInput struct {
	ID         string            `json:"id"`
	Properties map[string]string `json:"properties"`
}

type batchUpdateRequest struct {
	Inputs []batchUpdateInput `json:"inputs"`
}

type batchError struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Context struct {
		IDs []string `json:"ids,omitempty"`
	} `json:"context"`
}

type batchResponse struct {
	Status  string       `json:"status"`
	Results []rawObject  `json:"results"`
	Errors  []batchError `json:"errors,omitempty"`
}

func missingError(id string) batchError {
	e := batchError{
		Status:  "error",
		Message: "Could not get some objects, they may be deleted or not exist.",
	}
	e.Context.IDs = []string{id}
	return e
}

func writeBatch(w http.ResponseWriter, resp batchResponse) {
	if resp.Results == nil {
		resp.Results = []rawObject{}
	}
	if len(resp.Errors) > 0 {
		resp.Status = "COMPLETE_WITH_ERRORS"
		writeJSON(w, http.StatusMultiStatus, resp)
		return
	}
	resp.Status = "COMPLETE"
	writeJSON(w, http.StatusOK, resp)
}

func (h *handler) batchRead(w http.ResponseWriter, r *http.Request) {
	var req batchReadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "VALIDATION_ERROR", "invalid request body")
		return
	}
	objectType := r.PathValue("objectType")
	var resp batchResponse
	for _, in := range req.Inputs {
		o, err := h.store.GetObject(r.Context(), objectType, in.ID)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
			return
		}
		if o == nil {
			resp.Errors = append(resp.Errors, missingError(in.ID))
			continue
		}
		resp.Results = append(resp.Results, toRaw(o))
	}
	writeBatch(w, resp)
}

func (h *handler) batchCreate(w http.ResponseWriter, r *http.Request) {
	var req batchCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "VALIDATION_ERROR", "invalid request body")
		return
	}
	objectType := r.PathValue("objectType")
	var resp batchResponse
	for _, in := range req.Inputs {
		o, err := h.store.CreateObject(r.Context(), objectType, in.Properties)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
			return
		}
		resp.Results = append(resp.Results, toRaw(o))
	}
	writeBatch(w, resp)
}

func (h *handler) batchUpdate(w http.ResponseWriter, r *http.Request) {
	var req batchUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "VALIDATION_ERROR", "invalid request body")
		return
	}
	objectType := r.PathValue("objectType")
	var resp batchResponse
	for _, in := range req.Inputs {
		o, err := h.store.UpdateObject(r.Context(), objectType, in.ID, in.Properties)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
			return
		}
		if o == nil {
			resp.Errors = append(resp.Errors, missingError(in.ID))
			continue
		}
		resp.Results = append(resp.Results, toRaw(o))
	}
	writeBatch(w, resp)
}

func (h *handler) batchArchive(w http.ResponseWriter, r *http.Request) {
	var req batchReadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "VALIDATION_ERROR", "invalid request body")
		return
	}
	objectType := r.PathValue("objectType")
	for _, in := range req.Inputs {
		if err := h.store.ArchiveObject(r.Context(), objectType, in.ID); err != nil {
			writeError(w, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
			return
		}
	}
	w.WriteHeader(http.StatusNoContent)
}
