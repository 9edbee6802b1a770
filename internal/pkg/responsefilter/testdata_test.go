package responsefilter

import (
	"testing"

	"formfillout-service/internal/pkg/fillout_dto"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/require"
)

const sampleSubmissions = `{
	"responses": [
		{
			"submissionId": "ab9959b2-73e4-4d13-be3a-6b1c9b9bff1a",
			"submissionTime": "2024-05-16T23:20:05.324Z",
			"questions": [
				{"id": "bE2Bo4cGUv49cjnqZ4UnkW", "name": "What is your name?", "type": "ShortAnswer", "value": "Johnny"},
				{"id": "dSRAe3hygqVwTpPK69p5td", "name": "Please select a date to schedule your yearly check-in.", "type": "DatePicker", "value": "2024-02-01"},
				{"id": "fFnyxwWa3KV6nBdfBDCHEA", "name": "How many employees work under you?", "type": "NumberInput", "value": 2}
			]
		},
		{
			"submissionId": "cd01e2f3-0000-4d13-be3a-6b1c9b9bff1b",
			"submissionTime": "2024-05-17T10:00:00.000Z",
			"questions": [
				{"id": "bE2Bo4cGUv49cjnqZ4UnkW", "name": "What is your name?", "type": "ShortAnswer", "value": "Timmy"},
				{"id": "dSRAe3hygqVwTpPK69p5td", "name": "Please select a date to schedule your yearly check-in.", "type": "DatePicker", "value": "2024-05-26"},
				{"id": "fFnyxwWa3KV6nBdfBDCHEA", "name": "How many employees work under you?", "type": "NumberInput", "value": 4}
			]
		},
		{
			"submissionId": "ef45aa10-1111-4d13-be3a-6b1c9b9bff1c",
			"submissionTime": "2024-05-18T08:30:00.000Z",
			"questions": [
				{"id": "bE2Bo4cGUv49cjnqZ4UnkW", "name": "What is your name?", "type": "ShortAnswer", "value": null},
				{"id": "dSRAe3hygqVwTpPK69p5td", "name": "Please select a date to schedule your yearly check-in.", "type": "DatePicker", "value": "2024-07-01"},
				{"id": "fFnyxwWa3KV6nBdfBDCHEA", "name": "How many employees work under you?", "type": "NumberInput", "value": "4"}
			]
		}
	],
	"totalResponses": 3,
	"pageCount": 1
}`

const (
	questionName      = "bE2Bo4cGUv49cjnqZ4UnkW"
	questionDate      = "dSRAe3hygqVwTpPK69p5td"
	questionEmployees = "fFnyxwWa3KV6nBdfBDCHEA"
)

func loadSample(t *testing.T) *fillout_dto.PagedResult {
	t.Helper()
	page := new(fillout_dto.PagedResult)
	require.NoError(t, json.Unmarshal([]byte(sampleSubmissions), page))
	return page
}

// numberedPage builds n responses that each answer q1 with "yes".
func numberedPage(n int) *fillout_dto.PagedResult {
	responses := make([]fillout_dto.Response, 0, n)
	for i := 0; i < n; i++ {
		responses = append(responses, fillout_dto.Response{
			SubmissionID: string(rune('a'+i%26)) + string(rune('0'+i/26)),
			Questions: []fillout_dto.Answer{
				{QuestionID: "q1", Value: fillout_dto.StringValue("yes")},
				{QuestionID: "q2", Value: fillout_dto.NumberValue(float64(i))},
			},
		})
	}
	return &fillout_dto.PagedResult{Responses: responses, TotalResponses: n, PageCount: 1}
}

func submissionIDs(result *fillout_dto.PagedResult) []string {
	ids := make([]string, 0, len(result.Responses))
	for _, response := range result.Responses {
		ids = append(ids, response.SubmissionID)
	}
	return ids
}
