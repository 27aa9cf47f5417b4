package jira

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProjects(t *testing.T) {
	t.Parallel()

	t.Run("lists projects", func(t *testing.T) {
		t.Parallel()

		c, rec := recordingClient(t, http.StatusOK, `[
			{"key": "JRA", "name": "JIRA"},
			{"key": "TEST", "name": "Testing"}
		]`)
		projects, err := c.Projects(context.Background())
		require.NoError(t, err)

		assert.Equal(t, "/rest/api/2/project", rec.path)
		require.Len(t, projects, 2)
		assert.Equal(t, "JRA", projects[0].Key())
		assert.Equal(t, "Testing", projects[1].Name())
	})

	t.Run("fetches one project", func(t *testing.T) {
		t.Parallel()

		c, rec := recordingClient(t, http.StatusOK, `{"key": "JRA", "id": "10000", "name": "JIRA"}`)
		p, err := c.Project(context.Background(), "JRA")
		require.NoError(t, err)

		assert.Equal(t, "/rest/api/2/project/JRA", rec.path)
		assert.Equal(t, "10000", p.ID())
	})

	t.Run("unknown project surfaces HTTPError", func(t *testing.T) {
		t.Parallel()

		c, _ := recordingClient(t, http.StatusNotFound, `{"errorMessages": ["No project could be found with key 'NOPE'."]}`)
		_, err := c.Project(context.Background(), "NOPE")

		var httpErr *HTTPError
		require.ErrorAs(t, err, &httpErr)
		assert.Equal(t, http.StatusNotFound, httpErr.StatusCode)
	})
}

func TestProjectComponentsAndVersions(t *testing.T) {
	t.Parallel()

	t.Run("lists components", func(t *testing.T) {
		t.Parallel()

		c, rec := recordingClient(t, http.StatusOK, `[{"id": "100", "name": "Backend"}]`)
		comps, err := c.ProjectComponents(context.Background(), "JRA")
		require.NoError(t, err)

		assert.Equal(t, "/rest/api/2/project/JRA/components", rec.path)
		require.Len(t, comps, 1)
		assert.Equal(t, "Backend", comps[0].Name())
	})

	t.Run("lists versions", func(t *testing.T) {
		t.Parallel()

		c, rec := recordingClient(t, http.StatusOK, `[{"id": "200", "name": "1.0"}]`)
		vers, err := c.ProjectVersions(context.Background(), "JRA")
		require.NoError(t, err)

		assert.Equal(t, "/rest/api/2/project/JRA/versions", rec.path)
		require.Len(t, vers, 1)
		assert.Equal(t, "1.0", vers[0].Name())
	})

	t.Run("project roles", func(t *testing.T) {
		t.Parallel()

		c, rec := recordingClient(t, http.StatusOK, `{"Developers": "https://jira.example.com/rest/api/2/project/JRA/role/10100"}`)
		roles, err := c.ProjectRoles(context.Background(), "JRA")
		require.NoError(t, err)

		assert.Equal(t, "/rest/api/2/project/JRA/role", rec.path)
		assert.True(t, roles.Get("Developers").Exists())
	})
}

func TestCreateComponent(t *testing.T) {
	t.Parallel()

	t.Run("posts required fields only", func(t *testing.T) {
		t.Parallel()

		c, rec := recordingClient(t, http.StatusCreated, `{"id": "100", "name": "Backend"}`)
		comp, err := c.CreateComponent(context.Background(), "Backend", "JRA", nil)
		require.NoError(t, err)

		assert.Equal(t, http.MethodPost, rec.method)
		assert.Equal(t, "/rest/api/2/component", rec.path)
		assert.JSONEq(t, `{"name": "Backend", "project": "JRA"}`, rec.body)
		assert.Equal(t, "100", comp.ID())
	})

	t.Run("includes optional fields when set", func(t *testing.T) {
		t.Parallel()

		c, rec := recordingClient(t, http.StatusCreated, `{"id": "101"}`)
		_, err := c.CreateComponent(context.Background(), "Backend", "JRA", &ComponentOptions{
			Description:  "server side",
			LeadUserName: "fred",
			AssigneeType: "COMPONENT_LEAD",
		})
		require.NoError(t, err)

		assert.JSONEq(t, `{
			"name": "Backend",
			"project": "JRA",
			"description": "server side",
			"leadUserName": "fred",
			"assigneeType": "COMPONENT_LEAD"
		}`, rec.body)
	})
}

func TestVersions(t *testing.T) {
	t.Parallel()

	t.Run("creates a version", func(t *testing.T) {
		t.Parallel()

		c, rec := recordingClient(t, http.StatusCreated, `{"id": "200", "name": "2.0"}`)
		v, err := c.CreateVersion(context.Background(), "2.0", "JRA", &VersionOptions{ReleaseDate: "2026-09-01"})
		require.NoError(t, err)

		assert.Equal(t, "/rest/api/2/version", rec.path)
		assert.JSONEq(t, `{"name": "2.0", "project": "JRA", "releaseDate": "2026-09-01"}`, rec.body)
		assert.Equal(t, "2.0", v.Name())
	})

	t.Run("fetches a version", func(t *testing.T) {
		t.Parallel()

		c, rec := recordingClient(t, http.StatusOK, `{"id": "200", "name": "2.0"}`)
		_, err := c.Version(context.Background(), "200")
		require.NoError(t, err)

		assert.Equal(t, "/rest/api/2/version/200", rec.path)
	})

	t.Run("moves a version", func(t *testing.T) {
		t.Parallel()

		c, rec := recordingClient(t, http.StatusOK, `{"id": "200", "name": "2.0"}`)
		_, err := c.MoveVersion(context.Background(), "200", "First")
		require.NoError(t, err)

		assert.Equal(t, http.MethodPost, rec.method)
		assert.Equal(t, "/rest/api/2/version/200/move", rec.path)
		assert.JSONEq(t, `{"position": "First"}`, rec.body)
	})
}
