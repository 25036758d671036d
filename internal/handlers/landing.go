package handlers

import "net/http"

const landingHTML = `<!DOCTYPE html>
<html>
<head>
	<title>accountd</title>
</head>
<body>
	<h1>accountd</h1>
	<p>User-account administration API.</p>
	<ul>
		<li>POST /register</li>
		<li>POST /login</li>
		<li>GET /users</li>
		<li>PUT /user</li>
		<li>DELETE /user</li>
	</ul>
</body>
</html>
`

// Landing serves the static landing page. It is also the fallback for any
// unmatched method and path, which renders this page rather than a 404.
func Landing(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(landingHTML))
}

// Preflight answers wildcard OPTIONS requests with an empty body.
func Preflight(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(http.StatusOK)
}

// Healthz reports process liveness.
func Healthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
