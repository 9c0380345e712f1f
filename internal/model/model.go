// Package model defines the entities exposed by the API and the
// request payloads used to create them.
//
// Entities are plain structs: `db` tags map result columns for
// pgx.RowToStructByName, `json` tags define the wire representation.
// Children are never loaded implicitly; repositories fill the nested
// slices explicitly.
package model

import "github.com/shopspring/decimal"

func init() {
	// Amounts go over the wire as JSON numbers.
	decimal.MarshalJSONWithoutQuotes = true
}

// Payloads implement the Validate hook of the handler pipeline. Field
// contents are accepted as sent; the database enforces references.

// ListParams is the (empty) request of every collection GET.
type ListParams struct{}

func (p *ListParams) Validate() error {
	return nil
}

// NewListParams returns a fresh ListParams.
func NewListParams() *ListParams {
	return &ListParams{}
}

// IDParam carries the identity of an item route. Only the path sets it;
// an "id" key in a request body is ignored.
type IDParam struct {
	ID int64 `param:"id" json:"-"`
}

func (p *IDParam) Validate() error {
	return nil
}

// NewIDParam returns a fresh IDParam.
func NewIDParam() *IDParam {
	return &IDParam{}
}
