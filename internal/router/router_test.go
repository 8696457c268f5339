package router_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	jwtauth "pet-care-dashboard/internal/adapters/auth/jwt"
	"pet-care-dashboard/internal/middleware"
	"pet-care-dashboard/internal/router"
)

func newServer(t *testing.T, opts router.Options) *httptest.Server {
	t.Helper()

	h, err := router.NewRouter(opts)
	if err != nil {
		t.Fatalf("new router: %v", err)
	}
	ts := httptest.NewServer(h)
	t.Cleanup(ts.Close)
	return ts
}

func TestHTTP_EndToEnd_PetsAndOwnership(t *testing.T) {
	ts := newServer(t, router.Options{})

	ownerID := "owner-1"
	otherID := "other-1"

	// 1) Sin usuario => 401
	if st, _ := doReq(t, ts.URL, "GET", "/pets", "", nil); st != http.StatusUnauthorized {
		t.Fatalf("expected 401 without user, got %d", st)
	}

	// 2) Owner crea mascota
	petID := createResource(t, ts.URL, "/pets", ownerID, map[string]any{
		"name":  "Max",
		"breed": "Labrador",
		"age":   2,
		"type":  "Dog",
	})

	// 3) Validación: name y breed obligatorios
	if st, _ := doReq(t, ts.URL, "POST", "/pets", ownerID, map[string]any{"name": "Solo"}); st != http.StatusBadRequest {
		t.Fatalf("expected 400 missing breed, got %d", st)
	}

	// 4) Otro usuario no puede ver ni editar
	if st, _ := doReq(t, ts.URL, "GET", "/pets/"+petID, otherID, nil); st != http.StatusForbidden {
		t.Fatalf("expected 403 foreign pet, got %d", st)
	}
	if st, _ := doReq(t, ts.URL, "PATCH", "/pets/"+petID, otherID, map[string]any{"name": "X"}); st != http.StatusForbidden {
		t.Fatalf("expected 403 patch foreign pet, got %d", st)
	}

	// 5) Owner edita
	{
		st, body := doReq(t, ts.URL, "PATCH", "/pets/"+petID, ownerID, map[string]any{"name": "Max II"})
		if st != http.StatusOK {
			t.Fatalf("expected 200 patch, got %d body=%s", st, string(body))
		}
		var p struct {
			Name string `json:"name"`
		}
		_ = json.Unmarshal(body, &p)
		if p.Name != "Max II" {
			t.Fatalf("expected updated name, got %q", p.Name)
		}
	}

	// 6) Filtro por tipo
	{
		var items []map[string]any
		getJSON(t, ts.URL, "/pets?type=Cat", ownerID, &items)
		if len(items) != 0 {
			t.Fatalf("expected no cats, got %d", len(items))
		}
		getJSON(t, ts.URL, "/pets?q=labr", ownerID, &items)
		if len(items) != 1 {
			t.Fatalf("expected 1 search hit, got %d", len(items))
		}
	}

	// 7) Borrar dos veces => 204 las dos
	for i := 0; i < 2; i++ {
		if st, _ := doReq(t, ts.URL, "DELETE", "/pets/"+petID, ownerID, nil); st != http.StatusNoContent {
			t.Fatalf("expected 204 delete #%d, got %d", i+1, st)
		}
	}
	if st, _ := doReq(t, ts.URL, "GET", "/pets/"+petID, ownerID, nil); st != http.StatusNotFound {
		t.Fatalf("expected 404 after delete, got %d", st)
	}
}

func TestHTTP_AppointmentsCalendar(t *testing.T) {
	ts := newServer(t, router.Options{})
	userID := "u-appt"

	today := time.Now().UTC().Format("2006-01-02")
	tomorrow := time.Now().UTC().AddDate(0, 0, 1).Format("2006-01-02")

	apptID := createResource(t, ts.URL, "/appointments", userID, map[string]any{
		"title":    "Vaccination",
		"date":     today,
		"time":     "3:45 PM",
		"type":     "Veterinary",
		"petName":  "Charlie",
		"provider": "Dr. Smith Animal Clinic",
	})

	{
		var items []struct {
			ID   string `json:"id"`
			Time string `json:"time"`
		}
		getJSON(t, ts.URL, "/appointments?date="+today, userID, &items)
		if len(items) != 1 || items[0].Time != "15:45" {
			t.Fatalf("expected one 15:45 appointment today, got %+v", items)
		}
		getJSON(t, ts.URL, "/appointments?date="+tomorrow, userID, &items)
		if len(items) != 0 {
			t.Fatalf("expected none tomorrow, got %d", len(items))
		}
	}

	// Reprogramar
	if st, body := doReq(t, ts.URL, "PATCH", "/appointments/"+apptID, userID, map[string]any{
		"date": tomorrow,
		"time": "09:00",
	}); st != http.StatusOK {
		t.Fatalf("expected 200 reschedule, got %d body=%s", st, string(body))
	}

	// Tipo inválido
	if st, _ := doReq(t, ts.URL, "POST", "/appointments", userID, map[string]any{
		"title": "X", "date": today, "time": "10:00", "type": "Spa", "petName": "Y", "provider": "Z",
	}); st != http.StatusBadRequest {
		t.Fatalf("expected 400 unknown type, got %d", st)
	}

	if st, _ := doReq(t, ts.URL, "DELETE", "/appointments/"+apptID, userID, nil); st != http.StatusNoContent {
		t.Fatalf("expected 204 cancel, got %d", st)
	}
}

func TestHTTP_CatalogSeededAndFiltered(t *testing.T) {
	ts := newServer(t, router.Options{})

	var meds []struct {
		ID          string   `json:"id"`
		Kind        string   `json:"kind"`
		ForPetTypes []string `json:"forPetTypes"`
	}
	// lectura sin usuario permitida
	getJSON(t, ts.URL, "/medications", "", &meds)
	if len(meds) != 5 {
		t.Fatalf("expected 5 seeded medications, got %d", len(meds))
	}

	getJSON(t, ts.URL, "/vaccinations?petType=Cat", "", &meds)
	if len(meds) != 2 {
		t.Fatalf("expected 2 cat vaccinations, got %d", len(meds))
	}
	vaccineID := meds[0].ID

	// un id de vacuna no existe bajo /medications
	if st, _ := doReq(t, ts.URL, "GET", "/medications/"+vaccineID, "", nil); st != http.StatusNotFound {
		t.Fatalf("expected 404 vaccine under medications, got %d", st)
	}

	// escribir requiere usuario
	payload := map[string]any{"name": "Bravecto", "price": 55.0, "forPetTypes": []string{"Dog"}}
	if st, _ := doReq(t, ts.URL, "POST", "/medications", "", payload); st != http.StatusUnauthorized {
		t.Fatalf("expected 401 anonymous write, got %d", st)
	}
	createResource(t, ts.URL, "/medications", "admin", payload)

	getJSON(t, ts.URL, "/medications?petType=Dog", "", &meds)
	if len(meds) != 5 {
		t.Fatalf("expected 5 dog medications after add, got %d", len(meds))
	}
}

func TestHTTP_TrackerAndDashboard(t *testing.T) {
	ts := newServer(t, router.Options{})
	userID := "u-track"

	medID := createResource(t, ts.URL, "/tracker/medications", userID, map[string]any{
		"name":      "Antibiotics",
		"dosage":    "10mg",
		"frequency": "Twice Daily",
		"time":      "08:00,20:00",
	})

	{
		st, body := doReq(t, ts.URL, "POST", "/tracker/medications/"+medID+"/given", userID, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 mark given, got %d body=%s", st, string(body))
		}
		var m struct {
			LastGiven     *time.Time `json:"lastGiven"`
			NextDue       *time.Time `json:"nextDue"`
			MultipleTimes bool       `json:"multipleTimes"`
		}
		_ = json.Unmarshal(body, &m)
		if m.LastGiven == nil || m.NextDue == nil || !m.MultipleTimes {
			t.Fatalf("unexpected tracker response: %s", string(body))
		}
	}

	createResource(t, ts.URL, "/pets", userID, map[string]any{"name": "Luna", "breed": "Siamese", "type": "Cat"})

	var dash struct {
		Counts struct {
			Pets              int `json:"pets"`
			Appointments      int `json:"appointments"`
			ActiveMedications int `json:"activeMedications"`
		} `json:"counts"`
	}
	getJSON(t, ts.URL, "/", userID, &dash)
	if dash.Counts.Pets != 1 || dash.Counts.ActiveMedications != 1 || dash.Counts.Appointments != 0 {
		t.Fatalf("unexpected counts: %+v", dash.Counts)
	}

	// desactivar => sale del dashboard
	if st, _ := doReq(t, ts.URL, "PATCH", "/tracker/medications/"+medID, userID, map[string]any{"isActive": false}); st != http.StatusOK {
		t.Fatalf("expected 200 deactivate, got %d", st)
	}
	getJSON(t, ts.URL, "/", userID, &dash)
	if dash.Counts.ActiveMedications != 0 {
		t.Fatalf("expected 0 active medications, got %d", dash.Counts.ActiveMedications)
	}
}

func TestHTTP_HealthRecords(t *testing.T) {
	ts := newServer(t, router.Options{})
	userID := "u-health"

	petID := createResource(t, ts.URL, "/pets", userID, map[string]any{"name": "Buddy", "breed": "Golden Retriever"})

	for _, w := range []float64{66.3, 65.9} {
		createResource(t, ts.URL, "/health/"+petID+"/records", userID, map[string]any{
			"kind":   "weight",
			"weight": map[string]any{"value": w},
		})
	}

	// kind sin detalle
	if st, _ := doReq(t, ts.URL, "POST", "/health/"+petID+"/records", userID, map[string]any{"kind": "diet"}); st != http.StatusBadRequest {
		t.Fatalf("expected 400 diet without detail, got %d", st)
	}

	if st, _ := doReq(t, ts.URL, "GET", "/health/"+petID, "intruder", nil); st != http.StatusForbidden {
		t.Fatalf("expected 403 foreign health, got %d", st)
	}

	var sum struct {
		Summary struct {
			WeightTrend string `json:"weightTrend"`
		} `json:"summary"`
	}
	getJSON(t, ts.URL, "/health/"+petID, userID, &sum)
	if sum.Summary.WeightTrend != "stable" && sum.Summary.WeightTrend != "decreasing" {
		t.Fatalf("unexpected trend %q", sum.Summary.WeightTrend)
	}
}

func TestHTTP_ScreenDialogs(t *testing.T) {
	ts := newServer(t, router.Options{})
	userID := "u-ui"

	petID := createResource(t, ts.URL, "/pets", userID, map[string]any{"name": "Bella", "breed": "Siamese", "type": "Cat"})

	if st, _ := doReq(t, ts.URL, "GET", "/ui/kitchen", userID, nil); st != http.StatusNotFound {
		t.Fatalf("expected 404 unknown screen, got %d", st)
	}

	// editar sin selección => 409
	if st, _ := doReq(t, ts.URL, "POST", "/ui/pets/dialogs/edit/open", userID, nil); st != http.StatusConflict {
		t.Fatalf("expected 409 edit without selection, got %d", st)
	}

	if st, body := doReq(t, ts.URL, "POST", "/ui/pets/select", userID, map[string]any{"id": petID}); st != http.StatusOK {
		t.Fatalf("expected 200 select, got %d body=%s", st, string(body))
	}
	if st, _ := doReq(t, ts.URL, "POST", "/ui/pets/dialogs/view/open", userID, nil); st != http.StatusOK {
		t.Fatalf("expected 200 open view, got %d", st)
	}

	var state struct {
		Selected *string `json:"selected"`
		Dialogs  struct {
			View bool `json:"view"`
			Add  bool `json:"add"`
		} `json:"dialogs"`
	}
	getJSON(t, ts.URL, "/ui/pets", userID, &state)
	if state.Selected == nil || *state.Selected != petID || !state.Dialogs.View {
		t.Fatalf("unexpected state after open view: %+v", state)
	}

	// la mascota de otro usuario no se puede seleccionar
	if st, _ := doReq(t, ts.URL, "POST", "/ui/pets/select", "someone-else", map[string]any{"id": petID}); st != http.StatusOK {
		t.Fatalf("expected 200 select foreign (no-op), got %d", st)
	}
	getJSON(t, ts.URL, "/ui/pets", "someone-else", &state)
	if state.Selected != nil {
		t.Fatalf("expected empty selection for other user, got %v", *state.Selected)
	}
}

func TestHTTP_DeletedSelectionIsCleared(t *testing.T) {
	ts := newServer(t, router.Options{})
	userID := "u-ui-del"

	petID := createResource(t, ts.URL, "/pets", userID, map[string]any{"name": "Buddy", "breed": "Beagle", "type": "Dog"})

	if st, body := doReq(t, ts.URL, "POST", "/ui/pets/select", userID, map[string]any{"id": petID}); st != http.StatusOK {
		t.Fatalf("expected 200 select, got %d body=%s", st, string(body))
	}
	if st, _ := doReq(t, ts.URL, "POST", "/ui/pets/dialogs/view/open", userID, nil); st != http.StatusOK {
		t.Fatalf("expected 200 open view, got %d", st)
	}
	if st, _ := doReq(t, ts.URL, "DELETE", "/pets/"+petID, userID, nil); st != http.StatusNoContent {
		t.Fatalf("expected 204 delete, got %d", st)
	}

	var state struct {
		Selected *string `json:"selected"`
		Dialogs  struct {
			View bool `json:"view"`
		} `json:"dialogs"`
	}
	getJSON(t, ts.URL, "/ui/pets", userID, &state)
	if state.Selected != nil {
		t.Fatalf("expected selection cleared after delete, got %v", *state.Selected)
	}
	if state.Dialogs.View {
		t.Fatalf("expected view closed after delete")
	}

	// sin selección no se puede abrir edit
	if st, _ := doReq(t, ts.URL, "POST", "/ui/pets/dialogs/edit/open", userID, nil); st != http.StatusConflict {
		t.Fatalf("expected 409 edit after delete, got %d", st)
	}
}

func TestHTTP_SwaggerDocListsItemRoutes(t *testing.T) {
	ts := newServer(t, router.Options{})

	st, body := doReq(t, ts.URL, "GET", "/swagger/doc.json", "", nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200 doc.json, got %d", st)
	}
	var doc struct {
		Paths map[string]map[string]json.RawMessage `json:"paths"`
	}
	if err := json.Unmarshal(body, &doc); err != nil {
		t.Fatalf("decode doc.json: %v", err)
	}

	want := map[string][]string{
		"/pets/{petID}":                       {"get", "patch", "delete"},
		"/appointments/upcoming":              {"get"},
		"/appointments/{appointmentID}":       {"get", "patch", "delete"},
		"/medications/{productID}":            {"get", "patch", "delete"},
		"/vaccinations/{productID}":           {"get", "patch", "delete"},
		"/tracker/medications/{medicationID}": {"get", "patch", "delete"},
		"/health/{petID}/records/{recordID}":  {"delete"},
		"/ui/{screen}/select":                 {"post", "delete"},
		"/ui/{screen}/dialogs/{dialog}/close": {"post"},
		"/ui/{screen}/filter":                 {"put"},
		"/nav":                                {"get"},
	}
	for path, methods := range want {
		for _, m := range methods {
			if _, ok := doc.Paths[path][m]; !ok {
				t.Errorf("doc.json missing %s %s", m, path)
			}
		}
	}
}

func TestHTTP_BearerTokens(t *testing.T) {
	v := jwtauth.NewVerifier("s3cret", "")
	ts := newServer(t, router.Options{AuthVerifier: v})

	tok, err := v.IssueToken("u-bearer", time.Hour)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	// el header de debug no sirve con verifier
	if st, _ := doReq(t, ts.URL, "GET", "/pets", "u-bearer", nil); st != http.StatusUnauthorized {
		t.Fatalf("expected 401 with debug header in bearer mode, got %d", st)
	}

	req, _ := http.NewRequest("GET", ts.URL+"/pets", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	res, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 with bearer token, got %d", res.StatusCode)
	}
}

func TestHTTP_RateLimitAndPublicRoutes(t *testing.T) {
	ts := newServer(t, router.Options{RateLimiter: middleware.NewRateLimiter(0.001, 3)})

	for _, path := range []string{"/healthz", "/nav"} {
		if st, _ := doReq(t, ts.URL, "GET", path, "", nil); st != http.StatusOK {
			t.Fatalf("expected 200 on %s, got %d", path, st)
		}
	}
	if st, _ := doReq(t, ts.URL, "GET", "/healthz", "", nil); st != http.StatusOK {
		t.Fatalf("expected 200 within burst, got %d", st)
	}
	if st, _ := doReq(t, ts.URL, "GET", "/healthz", "", nil); st != http.StatusTooManyRequests {
		t.Fatalf("expected 429 after burst, got %d", st)
	}
}

func TestHTTP_SeedDemoUser(t *testing.T) {
	ts := newServer(t, router.Options{SeedDemoUser: "demo"})

	var items []map[string]any
	getJSON(t, ts.URL, "/pets", "demo", &items)
	if len(items) != 3 {
		t.Fatalf("expected 3 demo pets, got %d", len(items))
	}
	getJSON(t, ts.URL, "/health", "demo", &items)
	if len(items) != 3 {
		t.Fatalf("expected 3 health summaries, got %d", len(items))
	}
}

func createResource(t *testing.T, baseURL, path, userID string, payload map[string]any) string {
	t.Helper()

	st, body := doReq(t, baseURL, "POST", path, userID, payload)
	if st != http.StatusCreated {
		t.Fatalf("expected 201 POST %s, got %d body=%s", path, st, string(body))
	}

	var resp struct {
		ID string `json:"id"`
	}
	_ = json.Unmarshal(body, &resp)
	if resp.ID == "" {
		t.Fatalf("POST %s: missing id body=%s", path, string(body))
	}
	return resp.ID
}

func getJSON(t *testing.T, baseURL, path, userID string, out any) {
	t.Helper()

	st, body := doReq(t, baseURL, "GET", path, userID, nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200 GET %s, got %d body=%s", path, st, string(body))
	}
	if err := json.Unmarshal(body, out); err != nil {
		t.Fatalf("GET %s: decode: %v body=%s", path, err, string(body))
	}
}

func doReq(t *testing.T, baseURL, method, path, debugUserID string, body any) (int, []byte) {
	t.Helper()

	var rdr io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("json marshal: %v", err)
		}
		rdr = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, baseURL+path, rdr)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if debugUserID != "" {
		req.Header.Set(middleware.DebugUserHeader, debugUserID)
	}

	res, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer res.Body.Close()

	respBody, _ := io.ReadAll(res.Body)
	return res.StatusCode, respBody
}
