package v1_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ttig/internal/engagement"
	"ttig/internal/places"
	"ttig/internal/testsupport"
)

func TestPlaces_List(t *testing.T) {
	db := testsupport.SetupTestDB(t)
	stay := testsupport.SamplePlace("2", "Forest Stay")
	stay.Category = "STAY"
	store := testsupport.SetupTestPlacesStore(t, []places.Place{
		testsupport.SamplePlace("1", "Onion"),
		stay,
	})
	app := testsupport.CreateMinimalTestApp(t, db, store)

	resp, err := app.Test(trackRequestFor("GET", "/api/places"))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	all := body["places"].([]any)
	assert.Len(t, all, 2)
}

func TestPlaces_ListByCategory(t *testing.T) {
	db := testsupport.SetupTestDB(t)
	stay := testsupport.SamplePlace("2", "Forest Stay")
	stay.Category = "STAY"
	store := testsupport.SetupTestPlacesStore(t, []places.Place{
		testsupport.SamplePlace("1", "Onion"),
		stay,
	})
	app := testsupport.CreateMinimalTestApp(t, db, store)

	resp, err := app.Test(trackRequestFor("GET", "/api/places?category=STAY"))
	require.NoError(t, err)

	body := decodeBody(t, resp)
	all := body["places"].([]any)
	require.Len(t, all, 1)

	place := all[0].(map[string]any)
	assert.Equal(t, "Forest Stay", place["title"])
}

func TestPlaces_GetBySlug(t *testing.T) {
	db := testsupport.SetupTestDB(t)
	store := testsupport.SetupTestPlacesStore(t, []places.Place{testsupport.SamplePlace("1", "Onion")})
	app := testsupport.CreateMinimalTestApp(t, db, store)

	resp, err := app.Test(trackRequestFor("GET", "/api/places/seongsu-cafe-onion"))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, "Onion", body["title"])
	assert.Equal(t, "seongsu-cafe-onion", body["slug"])

	missing, err := app.Test(trackRequestFor("GET", "/api/places/no-such-place"))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, missing.StatusCode)
}

func TestEngagement_Endpoints(t *testing.T) {
	db := testsupport.SetupTestDB(t)
	store := testsupport.SetupTestPlacesStore(t, []places.Place{testsupport.SamplePlace("1", "Onion")})
	app := testsupport.CreateMinimalTestApp(t, db, store)

	view, err := app.Test(trackRequestFor("POST", "/api/spaces/1/view"))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, view.StatusCode)

	keep, err := app.Test(trackRequestFor("POST", "/api/spaces/seongsu-cafe-onion/keep"))
	require.NoError(t, err)
	keepBody := decodeBody(t, keep)
	assert.Equal(t, true, keepBody["success"])
	assert.Equal(t, true, keepBody["isKept"])

	share, err := app.Test(trackRequestFor("POST", "/api/spaces/1/share"))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, share.StatusCode)

	stat, err := engagement.Get(db, "1")
	require.NoError(t, err)
	assert.Equal(t, 1, stat.Views)
	assert.Equal(t, 1, stat.Keeps)
	assert.Equal(t, 1, stat.Shares)
}

func TestEngagement_Preflight(t *testing.T) {
	db := testsupport.SetupTestDB(t)
	store := testsupport.SetupTestPlacesStore(t, nil)
	app := testsupport.CreateMinimalTestApp(t, db, store)

	req := trackRequestFor("OPTIONS", "/api/spaces/1/keep")
	req.Header.Set("Origin", "https://www.ttig.kr")
	req.Header.Set("Access-Control-Request-Method", "POST")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))
}

func TestEngagement_UnknownPlaceStillSucceeds(t *testing.T) {
	db := testsupport.SetupTestDB(t)
	store := testsupport.SetupTestPlacesStore(t, nil)
	app := testsupport.CreateMinimalTestApp(t, db, store)

	resp, err := app.Test(trackRequestFor("POST", "/api/spaces/ghost/view"))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, true, body["success"])
}

func trackRequestFor(method, target string) *http.Request {
	req := httptest.NewRequest(method, target, nil)
	req.Header.Set("User-Agent", browserUA)
	return req
}
