package api

import (
	"encoding/json"

	"github.com/playlog/playlog/internal/models"
	pkgapi "github.com/playlog/playlog/pkg/api"
)

// pageEnvelope is the inner shape of paginated listing payloads:
// the item array under data, plus meta and links blocks.
type pageEnvelope struct {
	Data  json.RawMessage `json:"data"`
	Meta  pkgapi.Meta     `json:"meta"`
	Links pkgapi.Links    `json:"links"`
}

// normalizePage maps backend pagination metadata to the one shape all
// listings expose. NextPage is nil exactly when the current page is
// the last one.
func normalizePage(meta pkgapi.Meta) models.Pagination {
	p := models.Pagination{
		CurrentPage: meta.CurrentPage,
		LastPage:    meta.LastPage,
	}
	if meta.CurrentPage < meta.LastPage {
		next := meta.CurrentPage + 1
		p.NextPage = &next
	}
	return p
}
