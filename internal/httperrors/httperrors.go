package httperrors

import (
	"fmt"
	"net/http"

	"gitlab.com/gitlab-org/labkit/errortracking"

	"gitlab.com/tachyons/spa-pages/internal/logging"
)

type content struct {
	status       int
	title        string
	statusString string
	header       string
	subHeader    string
}

var (
	content404 = content{
		http.StatusNotFound,
		"File not found (404)",
		"404",
		"File not found",
		`<p>The file you are looking for does not exist and no fallback page applies.</p>
     <p>Make sure the address is correct and that the page hasn't moved.</p>`,
	}
	content405 = content{
		http.StatusMethodNotAllowed,
		"Method not allowed (405)",
		"405",
		"Method not allowed.",
		`<p>The server only understands standard HTTP methods.</p>`,
	}
	content414 = content{
		status:       http.StatusRequestURITooLong,
		title:        "Request URI Too Long (414)",
		statusString: "414",
		header:       "Request URI Too Long.",
		subHeader: `<p>The URI provided was too long for the server to process.</p>
			<p>Try to make the request URI shorter.</p>`,
	}
	content429 = content{
		http.StatusTooManyRequests,
		"Too many requests (429)",
		"429",
		"Too many requests.",
		`<p>The resource that you are attempting to access is being rate limited.</p>`,
	}
	content500 = content{
		http.StatusInternalServerError,
		"Something went wrong (500)",
		"500",
		"Whoops, something went wrong on our end.",
		`<p>Try refreshing the page, or going back and attempting the action again.</p>`,
	}
)

const predefinedErrorPage = `
<!DOCTYPE html>
<html>
<head>
  <meta content="width=device-width, initial-scale=1, maximum-scale=1" name="viewport">
  <title>%v</title>
  <style>
    body {
      color: #666;
      text-align: center;
      font-family: "Helvetica Neue", Helvetica, Arial, sans-serif;
      margin: auto;
      font-size: 14px;
    }

    h1 {
      font-size: 56px;
      line-height: 100px;
      font-weight: 400;
      color: #456;
    }

    h3 {
      color: #456;
      font-size: 20px;
      font-weight: 400;
      line-height: 28px;
    }

    hr {
      max-width: 800px;
      margin: 18px auto;
      border: 0;
      border-top: 1px solid #EEE;
      border-bottom: 1px solid white;
    }

    .container {
      margin: auto 20px;
    }
  </style>
</head>

<body>
  <h1>
    %v
  </h1>
  <div class="container">
    <h3>%v</h3>
    <hr />
    %v
  </div>
</body>
</html>
`

func generateErrorHTML(c content) string {
	return fmt.Sprintf(predefinedErrorPage, c.title, c.statusString, c.header, c.subHeader)
}

func serveErrorPage(w http.ResponseWriter, c content) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(c.status)
	fmt.Fprintln(w, generateErrorHTML(c))
}

// Serve404 returns a 404 error response / HTML page to the http.ResponseWriter
func Serve404(w http.ResponseWriter) {
	serveErrorPage(w, content404)
}

// Serve405 returns a 405 error response / HTML page to the http.ResponseWriter
func Serve405(w http.ResponseWriter) {
	serveErrorPage(w, content405)
}

// Serve414 returns a 414 error response / HTML page to the http.ResponseWriter
func Serve414(w http.ResponseWriter) {
	serveErrorPage(w, content414)
}

// Serve429 returns a 429 error response / HTML page to the http.ResponseWriter
func Serve429(w http.ResponseWriter) {
	serveErrorPage(w, content429)
}

// Serve500 returns a 500 error response / HTML page to the http.ResponseWriter
func Serve500(w http.ResponseWriter) {
	serveErrorPage(w, content500)
}

// Serve500WithRequest returns a 500 error response / HTML page to the http.ResponseWriter
func Serve500WithRequest(w http.ResponseWriter, r *http.Request, reason string, err error) {
	logging.LogRequest(r).WithError(err).Error(reason)
	errortracking.Capture(err, errortracking.WithRequest(r))
	serveErrorPage(w, content500)
}
