package moderation

import (
	"github.com/toshiba/sw360/pkg/model"
	"github.com/toshiba/sw360/pkg/store"
)

// RequestsStore is the moderation-request store surface the moderators
// consume.
type RequestsStore interface {
	CreateRequest(req *model.ModerationRequest) error
	RequestsForDocument(documentID string) ([]model.ModerationRequest, error)
	UpdateRequest(req *model.ModerationRequest) error
}

// RequestOfUser picks the request a given user filed out of a document's
// requests, or nil when the user has none. Only open requests count: a
// decided request no longer shadows the stored document.
func RequestOfUser(requests []model.ModerationRequest, email string) *model.ModerationRequest {
	for i := range requests {
		if requests[i].RequestingUser == email && requests[i].IsOpen() {
			return &requests[i]
		}
	}
	return nil
}

// Requests implements RequestsStore on a document-store collection.
type Requests struct {
	col store.Collection[model.ModerationRequest]
}

var _ RequestsStore = (*Requests)(nil)

// NewRequests wraps a moderation-request collection.
func NewRequests(col store.Collection[model.ModerationRequest]) *Requests {
	return &Requests{col: col}
}

func (r *Requests) CreateRequest(req *model.ModerationRequest) error {
	return r.col.Add(req)
}

func (r *Requests) RequestsForDocument(documentID string) ([]model.ModerationRequest, error) {
	return r.col.QueryByIndex(store.IndexByDocumentID, documentID)
}

func (r *Requests) UpdateRequest(req *model.ModerationRequest) error {
	return r.col.Update(req)
}
