package fillout_dto

import (
	"github.com/goccy/go-json"
)

const (
	fieldSubmissionID   = "submissionId"
	fieldSubmissionTime = "submissionTime"
	fieldLastUpdatedAt  = "lastUpdatedAt"
	fieldQuestions      = "questions"

	fieldResponses      = "responses"
	fieldTotalResponses = "totalResponses"
	fieldPageCount      = "pageCount"
)

// PagedResult is one page of submissions as the submissions API returns it,
// and the envelope the proxy answers with. Top-level fields other than the
// three below survive re-encoding untouched.
type PagedResult struct {
	Responses      []Response
	TotalResponses int
	PageCount      int

	fields map[string]json.RawMessage
}

func (p *PagedResult) UnmarshalJSON(data []byte) error {
	fields := make(map[string]json.RawMessage)
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}

	parsed := PagedResult{fields: fields}
	if err := decodeField(fields, fieldResponses, &parsed.Responses); err != nil {
		return err
	}
	if err := decodeField(fields, fieldTotalResponses, &parsed.TotalResponses); err != nil {
		return err
	}
	if err := decodeField(fields, fieldPageCount, &parsed.PageCount); err != nil {
		return err
	}

	*p = parsed
	return nil
}

// MarshalJSON always writes responses. The counters are left out only when
// the decoded upstream page lacked them and they are still zero.
func (p PagedResult) MarshalJSON() ([]byte, error) {
	out := make(map[string]interface{}, len(p.fields)+3)
	for key, raw := range p.fields {
		out[key] = raw
	}

	responses := p.Responses
	if responses == nil {
		responses = []Response{}
	}
	out[fieldResponses] = responses
	p.setCounter(out, fieldTotalResponses, p.TotalResponses)
	p.setCounter(out, fieldPageCount, p.PageCount)

	return json.Marshal(out)
}

func (p PagedResult) setCounter(out map[string]interface{}, key string, value int) {
	if _, upstream := p.fields[key]; p.fields != nil && !upstream && value == 0 {
		return
	}
	out[key] = value
}

// Clone copies the envelope and the responses slice. Responses themselves are
// treated as immutable values.
func (p *PagedResult) Clone() *PagedResult {
	if p == nil {
		return nil
	}
	clone := *p
	if p.Responses != nil {
		clone.Responses = make([]Response, len(p.Responses))
		copy(clone.Responses, p.Responses)
	}
	return &clone
}

// Response is one form submission. Only the fields the filter needs are
// decoded; everything else survives re-encoding untouched.
type Response struct {
	SubmissionID   string
	SubmissionTime string
	LastUpdatedAt  string
	Questions      []Answer

	fields map[string]json.RawMessage
}

// WithQuestions returns a copy of the response carrying the given answers.
func (r Response) WithQuestions(questions []Answer) Response {
	r.Questions = questions
	return r
}

func (r *Response) UnmarshalJSON(data []byte) error {
	fields := make(map[string]json.RawMessage)
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}

	parsed := Response{fields: fields}
	if err := decodeField(fields, fieldSubmissionID, &parsed.SubmissionID); err != nil {
		return err
	}
	if err := decodeField(fields, fieldSubmissionTime, &parsed.SubmissionTime); err != nil {
		return err
	}
	if err := decodeField(fields, fieldLastUpdatedAt, &parsed.LastUpdatedAt); err != nil {
		return err
	}
	if err := decodeField(fields, fieldQuestions, &parsed.Questions); err != nil {
		return err
	}

	*r = parsed
	return nil
}

func (r Response) MarshalJSON() ([]byte, error) {
	out := make(map[string]interface{}, len(r.fields)+4)
	for key, raw := range r.fields {
		out[key] = raw
	}

	if r.fields == nil {
		out[fieldSubmissionID] = r.SubmissionID
		if r.SubmissionTime != "" {
			out[fieldSubmissionTime] = r.SubmissionTime
		}
		if r.LastUpdatedAt != "" {
			out[fieldLastUpdatedAt] = r.LastUpdatedAt
		}
	}

	questions := r.Questions
	if questions == nil {
		questions = []Answer{}
	}
	out[fieldQuestions] = questions

	return json.Marshal(out)
}

// Answer is a single question's recorded value within a Response.
type Answer struct {
	QuestionID string
	Value      Value

	raw json.RawMessage
}

type answerFields struct {
	ID    string `json:"id"`
	Value Value  `json:"value"`
}

func (a *Answer) UnmarshalJSON(data []byte) error {
	var fields answerFields
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}
	*a = Answer{
		QuestionID: fields.ID,
		Value:      fields.Value,
		raw:        append(json.RawMessage(nil), data...),
	}
	return nil
}

func (a Answer) MarshalJSON() ([]byte, error) {
	if a.raw != nil {
		return a.raw, nil
	}
	return json.Marshal(answerFields{ID: a.QuestionID, Value: a.Value})
}

func decodeField(fields map[string]json.RawMessage, key string, target interface{}) error {
	raw, ok := fields[key]
	if !ok || string(raw) == "null" {
		return nil
	}
	return json.Unmarshal(raw, target)
}
