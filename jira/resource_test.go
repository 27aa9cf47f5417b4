package jira_test

import (
	"encoding/json"
	"testing"

	"github.com/gi8lino/gojira/jira"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode(t *testing.T) {
	t.Parallel()

	t.Run("round-trips objects without loss", func(t *testing.T) {
		t.Parallel()

		payload := `{
			"key": "JRA-9",
			"id": 10002,
			"fields": {
				"summary": "Add support for sub-tasks",
				"votes": {"votes": 0, "hasVoted": false},
				"labels": ["backend", "api"],
				"customfield_10007": null,
				"timeestimate": 14400.5
			}
		}`

		res, err := jira.Decode([]byte(payload))
		require.NoError(t, err)

		out, err := json.Marshal(res)
		require.NoError(t, err)
		assert.JSONEq(t, payload, string(out))
	})

	t.Run("preserves large numbers exactly", func(t *testing.T) {
		t.Parallel()

		payload := `{"id":9007199254740993}`

		res, err := jira.Decode([]byte(payload))
		require.NoError(t, err)

		out, err := json.Marshal(res)
		require.NoError(t, err)
		assert.Equal(t, payload, string(out))
		assert.Equal(t, int64(9007199254740993), res.Get("id").Int())
	})

	t.Run("preserves array order and count", func(t *testing.T) {
		t.Parallel()

		res, err := jira.Decode([]byte(`["c","a","b"]`))
		require.NoError(t, err)

		require.Equal(t, 3, res.Len())
		elems := res.Slice()
		assert.Equal(t, "c", elems[0].Str())
		assert.Equal(t, "a", elems[1].Str())
		assert.Equal(t, "b", elems[2].Str())
	})

	t.Run("malformed JSON returns DecodeError", func(t *testing.T) {
		t.Parallel()

		_, err := jira.Decode([]byte(`{"key":`))

		var decErr *jira.DecodeError
		require.ErrorAs(t, err, &decErr)
	})

	t.Run("trailing data returns DecodeError", func(t *testing.T) {
		t.Parallel()

		_, err := jira.Decode([]byte(`{"key":"JRA-9"}garbage`))

		var decErr *jira.DecodeError
		require.ErrorAs(t, err, &decErr)
		assert.Contains(t, err.Error(), "trailing data")
	})

	t.Run("second JSON value returns DecodeError", func(t *testing.T) {
		t.Parallel()

		_, err := jira.Decode([]byte(`{"key":"JRA-9"}{"key":"JRA-10"}`))

		var decErr *jira.DecodeError
		require.ErrorAs(t, err, &decErr)
	})

	t.Run("trailing whitespace is fine", func(t *testing.T) {
		t.Parallel()

		res, err := jira.Decode([]byte("{\"key\":\"JRA-9\"}\n  "))
		require.NoError(t, err)
		assert.Equal(t, "JRA-9", res.Get("key").Str())
	})
}

func TestResourceNavigation(t *testing.T) {
	t.Parallel()

	res, err := jira.Decode([]byte(`{
		"key": "JRA-9",
		"fields": {
			"project": {"key": "JRA"},
			"assignee": null,
			"comment": {"comments": [{"id": "1", "body": "first"}, {"id": "2", "body": "second"}]}
		}
	}`))
	require.NoError(t, err)

	t.Run("walks nested objects", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "JRA", res.Get("fields").Get("project").Get("key").Str())
		assert.Equal(t, "JRA", res.Path("fields.project.key").Str())
	})

	t.Run("missing keys chain safely", func(t *testing.T) {
		t.Parallel()

		v := res.Path("fields.nonexistent.deeply.nested")
		assert.False(t, v.Exists())
		assert.Equal(t, "", v.Str())
		assert.Equal(t, int64(0), v.Int())
		assert.False(t, v.Bool())
	})

	t.Run("null values exist but have zero accessors", func(t *testing.T) {
		t.Parallel()

		v := res.Path("fields.assignee")
		assert.True(t, v.Exists())
		assert.Nil(t, v.Value())
		assert.Equal(t, "", v.Str())
	})

	t.Run("indexes arrays", func(t *testing.T) {
		t.Parallel()

		comments := res.Path("fields.comment.comments")
		assert.Equal(t, 2, comments.Len())
		assert.Equal(t, "first", comments.Index(0).Get("body").Str())
		assert.Equal(t, "second", comments.Index(1).Get("body").Str())
		assert.False(t, comments.Index(2).Exists())
		assert.False(t, comments.Index(-1).Exists())
	})

	t.Run("keys are sorted", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, []string{"fields", "key"}, res.Keys())
	})
}

func TestResourceAccessors(t *testing.T) {
	t.Parallel()

	res, err := jira.Decode([]byte(`{
		"str": "text",
		"int": 42,
		"float": 3.5,
		"bool": true,
		"numstr": "17"
	}`))
	require.NoError(t, err)

	t.Run("scalar conversions", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "text", res.Get("str").Str())
		assert.Equal(t, int64(42), res.Get("int").Int())
		assert.Equal(t, 3.5, res.Get("float").Float())
		assert.True(t, res.Get("bool").Bool())
		assert.Equal(t, int64(17), res.Get("numstr").Int())
	})

	t.Run("mismatched types yield zero values", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "", res.Get("int").Str())
		assert.Equal(t, int64(0), res.Get("str").Int())
		assert.Equal(t, float64(42), res.Get("int").Float())
		assert.False(t, res.Get("str").Bool())
	})

	t.Run("fractional numbers truncate to int", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, int64(3), res.Get("float").Int())
	})
}

func TestWrap(t *testing.T) {
	t.Parallel()

	t.Run("wraps decoded values", func(t *testing.T) {
		t.Parallel()

		r := jira.Wrap(map[string]any{"name": "Blocker"})
		assert.Equal(t, "Blocker", r.Get("name").Str())
	})

	t.Run("nil resource behaves as absent", func(t *testing.T) {
		t.Parallel()

		var r *jira.Resource
		assert.False(t, r.Exists())
		assert.Equal(t, "", r.Get("any").Str())
		assert.Nil(t, r.Slice())
	})
}
