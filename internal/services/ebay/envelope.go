package ebay

import (
	"encoding/xml"
	"fmt"
	"strings"
)

const (
	ebayNamespace = "urn:ebay:apis:eBLBaseComponents"
	xmlHeader     = `<?xml version="1.0" encoding="utf-8"?>`
)

// RequestBody carries the call-specific payload wrapped by BuildRequest.
// Only the fields the call uses are set: Item for the listing calls, ItemID
// for GetItem and EndFixedPriceItem.
type RequestBody struct {
	Item         *Item
	ItemID       string
	EndingReason string
	DetailLevel  string
}

// requestEnvelope is the SOAP-style wrapper every Trading call is posted in.
// The root element name is derived from the call name at build time.
type requestEnvelope struct {
	XMLName       xml.Name
	Xmlns         string `xml:"xmlns,attr"`
	ErrorLanguage string `xml:"ErrorLanguage"`
	WarningLevel  string `xml:"WarningLevel"`
	Item          *Item  `xml:"Item,omitempty"`
	ItemID        string `xml:"ItemID,omitempty"`
	EndingReason  string `xml:"EndingReason,omitempty"`
	DetailLevel   string `xml:"DetailLevel,omitempty"`
}

// BuildRequest serializes a call body into the <{CallName}Request> envelope
// with the fixed ErrorLanguage/WarningLevel headers and eBay namespace.
func BuildRequest(callName string, body RequestBody) ([]byte, error) {
	envelope := requestEnvelope{
		XMLName:       xml.Name{Local: callName + "Request"},
		Xmlns:         ebayNamespace,
		ErrorLanguage: "en_US",
		WarningLevel:  "High",
		Item:          body.Item,
		ItemID:        body.ItemID,
		EndingReason:  body.EndingReason,
		DetailLevel:   body.DetailLevel,
	}

	data, err := xml.Marshal(envelope)
	if err != nil {
		return nil, fmt.Errorf("marshaling %s request: %w", callName, err)
	}
	return []byte(xmlHeader + string(data)), nil
}

// ErrorDetail is one entry of a response's Errors list, carrying eBay's own
// code and messages.
type ErrorDetail struct {
	ErrorCode           string `xml:"ErrorCode" json:"code"`
	ShortMessage        string `xml:"ShortMessage" json:"shortMessage"`
	LongMessage         string `xml:"LongMessage" json:"longMessage"`
	SeverityCode        string `xml:"SeverityCode" json:"severityCode"`
	ErrorClassification string `xml:"ErrorClassification" json:"errorClassification,omitempty"`
}

// APIError is raised when a call comes back with a Failure or PartialFailure
// acknowledgement. It preserves eBay's error entries for downstream
// translation into user-facing messages.
type APIError struct {
	CallName string        `json:"callName"`
	Ack      string        `json:"ack"`
	Errors   []ErrorDetail `json:"errors"`
}

func (e *APIError) Error() string {
	msgs := make([]string, 0, len(e.Errors))
	for _, detail := range e.Errors {
		msgs = append(msgs, fmt.Sprintf("%s: %s", detail.ErrorCode, detail.ShortMessage))
	}
	if len(msgs) == 0 {
		return fmt.Sprintf("ebay: %s returned Ack=%s", e.CallName, e.Ack)
	}
	return fmt.Sprintf("ebay: %s returned Ack=%s: %s", e.CallName, e.Ack, strings.Join(msgs, "; "))
}

// CallResponse is the parsed Trading API response envelope. Call-specific
// fields are populated only for the calls that return them.
type CallResponse struct {
	XMLName   xml.Name      `json:"-"`
	Ack       string        `xml:"Ack" json:"ack"`
	Timestamp string        `xml:"Timestamp" json:"timestamp,omitempty"`
	Version   string        `xml:"Version" json:"version,omitempty"`
	Build     string        `xml:"Build" json:"build,omitempty"`
	Errors    []ErrorDetail `xml:"Errors" json:"-"`

	ItemID    string   `xml:"ItemID" json:"itemId,omitempty"`
	SKU       string   `xml:"SKU" json:"sku,omitempty"`
	StartTime string   `xml:"StartTime" json:"startTime,omitempty"`
	EndTime   string   `xml:"EndTime" json:"endTime,omitempty"`
	Fees      *FeeList `xml:"Fees" json:"fees,omitempty"`
	Item      *Item    `xml:"Item" json:"item,omitempty"`

	// Warnings holds the entries of Errors with SeverityCode=Warning; an
	// Ack=Warning response is a success with these attached.
	Warnings []ErrorDetail `json:"warnings,omitempty"`
}

type FeeList struct {
	Fee []Fee `xml:"Fee" json:"fee"`
}

type Fee struct {
	Name string `xml:"Name" json:"name"`
	Fee  Money  `xml:"Fee" json:"fee"`
}

// ParseResponse decodes a Trading call response for the given call name.
// Failure and PartialFailure acknowledgements surface as *APIError; Warning
// is treated as success with the warning entries split out for the caller to
// judge.
func ParseResponse(data []byte, callName string) (*CallResponse, error) {
	var resp CallResponse
	if err := xml.Unmarshal(data, &resp); err != nil {
		return nil, fmt.Errorf("parsing %s response: %w", callName, err)
	}

	if resp.Ack != "Success" && resp.Ack != "Warning" {
		return nil, &APIError{CallName: callName, Ack: resp.Ack, Errors: resp.Errors}
	}

	for _, detail := range resp.Errors {
		if detail.SeverityCode == "Warning" {
			resp.Warnings = append(resp.Warnings, detail)
		}
	}
	return &resp, nil
}
