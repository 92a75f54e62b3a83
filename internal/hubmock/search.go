package hubmock

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

type searchFilter struct {
	PropertyName string `json:"propertyName"`
	Operator     string `json:"operator"`
	Value        string `json:"value,omitempty"`
}

type filterGroup struct {
	Filters []searchFilter `json:"filters"`
}

type searchRequest struct {
	Query        string        `json:"query,omitempty"`
	FilterGroups []filterGroup `json:"filterGroups,omitempty"`
	Limit        int           `json:"limit,omitempty"`
	After        string        `json:"after,omitempty"`
}

// matchFilter implements the operator subset the fake supports. Anything
// else is rejected so a test never silently passes on an unimplemented
// operator.
func matchFilter(props map[string]string, f searchFilter) (bool, error) {
	value, present := props[f.PropertyName]
	switch f.Operator {
	case "EQ":
		return present && value == f.Value, nil
	case "NEQ":
		return !present || value != f.Value, nil
	case "CONTAINS_TOKEN":
		return present && strings.Contains(strings.ToLower(value), strings.ToLower(f.Value)), nil
	case "HAS_PROPERTY":
		return present && value != "", nil
	case "NOT_HAS_PROPERTY":
		return !present || value == "", nil
	default:
		return false, fmt.Errorf("operator %s is not supported", f.Operator)
	}
}

func matchQuery(props map[string]string, query string) bool {
	if query == "" {
		return true
	}
	q := strings.ToLower(query)
	for _, v := range props {
		if strings.Contains(strings.ToLower(v), q) {
			return true
		}
	}
	return false
}

func (h *handler) searchObjects(w http.ResponseWriter, r *http.Request) {
	var req searchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "VALIDATION_ERROR", "invalid request body")
		return
	}
	limit := req.Limit
	if limit < 1 {
		limit = 10
	}

	// Pull the whole set and filter in memory; a fake portal is always
	// small.
	all, _, err := h.store.ListObjects(r.Context(), r.PathValue("objectType"), 10_000, "")
	if err != nil {
		writeError(w, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
		return
	}

	var matched []rawObject
	for _, o := range all {
		if !matchQuery(o.Properties, req.Query) {
			continue
		}
		// Filters AND within a group, groups OR with each other.
		ok := len(req.FilterGroups) == 0
		for _, group := range req.FilterGroups {
			groupOK := true
			for _, f := range group.Filters {
				hit, err := matchFilter(o.Properties, f)
				if err != nil {
					writeError(w, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
					return
				}
				if !hit {
					groupOK = false
					break
				}
			}
			if groupOK {
				ok = true
				break
			}
		}
		if ok {
			matched = append(matched, toRaw(o))
		}
	}

	total := len(matched)
	start := 0
	if req.After != "" {
		for i, o := range matched {
			if o.ID == req.After {
				start = i + 1
				break
			}
		}
	}
	end := start + limit
	if end > len(matched) {
		end = len(matched)
	}
	page := matched[start:end]

	resp := collectionResponse{Results: page, Total: total}
	if end < len(matched) && len(page) > 0 {
		resp.Paging = &paging{Next: &pagingNext{After: page[len(page)-1].ID}}
	}
	if resp.Results == nil {
		resp.Results = []rawObject{}
	}
	writeJSON(w, http.StatusOK, resp)
}
