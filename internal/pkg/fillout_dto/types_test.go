package fillout_dto

import (
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const samplePage = `{
  "responses": [
    {
      "submissionId": "abc",
      "submissionTime": "2024-05-16T23:20:05.324Z",
      "lastUpdatedAt": "2024-05-16T23:20:05.324Z",
      "questions": [
        {"id": "q1", "name": "Happy?", "type": "MultipleChoice", "value": "yes"},
        {"id": "q2", "name": "Age", "type": "NumberInput", "value": 31}
      ],
      "calculations": [],
      "urlParameters": [{"id": "email", "name": "email", "value": "a@b.c"}],
      "editLink": "https://forms.example/edit/abc"
    }
  ],
  "totalResponses": 1,
  "pageCount": 1
}`

func TestPagedResultDecode(t *testing.T) {
	var page PagedResult
	require.NoError(t, json.Unmarshal([]byte(samplePage), &page))

	require.Len(t, page.Responses, 1)
	assert.Equal(t, 1, page.TotalResponses)
	assert.Equal(t, 1, page.PageCount)

	response := page.Responses[0]
	assert.Equal(t, "abc", response.SubmissionID)
	assert.Equal(t, "2024-05-16T23:20:05.324Z", response.SubmissionTime)
	require.Len(t, response.Questions, 2)
	assert.Equal(t, "q1", response.Questions[0].QuestionID)
	assert.Equal(t, StringValue("yes").Str, response.Questions[0].Value.Str)
	assert.Equal(t, KindNumber, response.Questions[1].Value.Kind)
	assert.Equal(t, float64(31), response.Questions[1].Value.Num)
}

func TestResponseEncodePreservesUnknownFields(t *testing.T) {
	var page PagedResult
	require.NoError(t, json.Unmarshal([]byte(samplePage), &page))

	out, err := json.Marshal(page.Responses[0])
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(out, &decoded))
	assert.Equal(t, "https://forms.example/edit/abc", decoded["editLink"])
	assert.Contains(t, decoded, "urlParameters")
	assert.Contains(t, decoded, "calculations")

	questions, ok := decoded["questions"].([]interface{})
	require.True(t, ok)
	require.Len(t, questions, 2)
	first := questions[0].(map[string]interface{})
	assert.Equal(t, "Happy?", first["name"], "answer fields outside id and value should survive")
}

func TestResponseWithQuestions(t *testing.T) {
	var page PagedResult
	require.NoError(t, json.Unmarshal([]byte(samplePage), &page))

	original := page.Responses[0]
	narrowed := original.WithQuestions(original.Questions[:1])

	assert.Len(t, original.Questions, 2, "original response should be untouched")
	assert.Len(t, narrowed.Questions, 1)

	out, err := json.Marshal(narrowed)
	require.NoError(t, err)

	var decoded struct {
		SubmissionID string        `json:"submissionId"`
		EditLink     string        `json:"editLink"`
		Questions    []interface{} `json:"questions"`
	}
	require.NoError(t, json.Unmarshal(out, &decoded))
	assert.Equal(t, "abc", decoded.SubmissionID)
	assert.Equal(t, "https://forms.example/edit/abc", decoded.EditLink)
	assert.Len(t, decoded.Questions, 1)
}

func TestResponseMissingQuestions(t *testing.T) {
	var response Response
	require.NoError(t, json.Unmarshal([]byte(`{"submissionId":"x"}`), &response))
	assert.Empty(t, response.Questions)

	out, err := json.Marshal(response)
	require.NoError(t, err)
	assert.JSONEq(t, `{"submissionId":"x","questions":[]}`, string(out))
}

func TestPagedResultClone(t *testing.T) {
	page := &PagedResult{
		Responses:      []Response{{SubmissionID: "a"}, {SubmissionID: "b"}},
		TotalResponses: 2,
		PageCount:      1,
	}

	clone := page.Clone()
	clone.Responses[0] = Response{SubmissionID: "z"}
	clone.TotalResponses = 9

	assert.Equal(t, "a", page.Responses[0].SubmissionID)
	assert.Equal(t, 2, page.TotalResponses)
	assert.Nil(t, (*PagedResult)(nil).Clone())
}

func TestPagedResultEncodePreservesEnvelope(t *testing.T) {
	t.Run("Unknown top-level fields survive", func(t *testing.T) {
		var page PagedResult
		require.NoError(t, json.Unmarshal([]byte(`{"responses":[],"totalResponses":3,"pageCount":2,"nextCursor":"abc"}`), &page))

		out, err := json.Marshal(&page)
		require.NoError(t, err)
		assert.JSONEq(t, `{"responses":[],"totalResponses":3,"pageCount":2,"nextCursor":"abc"}`, string(out))
	})

	t.Run("Missing page count stays missing", func(t *testing.T) {
		var page PagedResult
		require.NoError(t, json.Unmarshal([]byte(`{"responses":[],"totalResponses":0}`), &page))

		out, err := json.Marshal(page)
		require.NoError(t, err)
		assert.JSONEq(t, `{"responses":[],"totalResponses":0}`, string(out))
	})

	t.Run("Built result writes every counter", func(t *testing.T) {
		out, err := json.Marshal(PagedResult{PageCount: 1})
		require.NoError(t, err)
		assert.JSONEq(t, `{"responses":[],"totalResponses":0,"pageCount":1}`, string(out))
	})

	t.Run("Filtered page count is written even when upstream omitted it", func(t *testing.T) {
		var page PagedResult
		require.NoError(t, json.Unmarshal([]byte(`{"responses":[]}`), &page))
		clone := page.Clone()
		clone.PageCount = 1

		out, err := json.Marshal(clone)
		require.NoError(t, err)
		assert.JSONEq(t, `{"responses":[],"pageCount":1}`, string(out))
	})
}
