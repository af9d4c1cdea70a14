// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package mail

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/danielhkuo/college-site/models"
)

var displayZone = loadZone("Asia/Kolkata")

func loadZone(name string) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		return time.UTC
	}
	return loc
}

func formatTime(t time.Time) string {
	return t.In(displayZone).Format("02/01/2006, 3:04:05 pm")
}

var funcs = template.FuncMap{
	"lines":      func(s string) []string { return strings.Split(s, "\n") },
	"formatTime": formatTime,
}

var enquiryTmpl = template.Must(template.New("enquiry").Funcs(funcs).Parse(`
<p>You have received a new inquiry from the college website:</p>
<hr>
<p><strong>Name:</strong> {{.Name}}</p>
<p><strong>Email:</strong> {{.Email}}</p>
<p><strong>Subject:</strong> {{.Subject}}</p>
<p><strong>Message:</strong></p>
<div style="padding: 10px; border: 1px solid #eee; background: #f9f9f9;">
{{range $i, $line := lines .Message}}{{if $i}}<br>{{end}}{{$line}}{{end}}
</div>
<hr>
<p><em>Enquiry ID: {{.ID}}</em></p>
<p><em>Submitted At: {{formatTime .SubmittedAt}}</em></p>
`))

var applicationTmpl = template.Must(template.New("application").Funcs(funcs).Parse(`
<p>You have received a new admission application from the college website:</p>
<hr>
<p><strong>Full name:</strong> {{.FullName}}</p>
<p><strong>Email:</strong> {{.Email}}</p>
<p><strong>Phone:</strong> {{.Phone}}</p>
<p><strong>Course:</strong> {{.Course}}</p>
{{with .DateOfBirth}}<p><strong>Date of birth:</strong> {{.}}</p>{{end}}
{{with .Address}}<p><strong>Address:</strong> {{.}}</p>{{end}}
{{with .PreviousQualification}}<p><strong>Previous qualification:</strong> {{.}}</p>{{end}}
{{with .Message}}<p><strong>Message:</strong></p>
<div style="padding: 10px; border: 1px solid #eee; background: #f9f9f9;">
{{range $i, $line := lines .}}{{if $i}}<br>{{end}}{{$line}}{{end}}
</div>{{end}}
<hr>
<p><em>Application ID: {{.ID}}</em></p>
<p><em>Submitted At: {{formatTime .SubmittedAt}}</em></p>
`))

func renderEnquiry(e models.Enquiry) (string, error) {
	var buf bytes.Buffer
	if err := enquiryTmpl.Execute(&buf, e); err != nil {
		return "", fmt.Errorf("render enquiry mail: %w", err)
	}
	return buf.String(), nil
}

func renderApplication(a models.Application) (string, error) {
	var buf bytes.Buffer
	if err := applicationTmpl.Execute(&buf, a); err != nil {
		return "", fmt.Errorf("render application mail: %w", err)
	}
	return buf.String(), nil
}
