package handlers

import (
	"bytes"
	"crypto/sha1"
	"embed"
	"fmt"
	"html/template"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/securecookie"
	"github.com/gorilla/sessions"
	"golang.org/x/crypto/pbkdf2"

	"github.com/spencer-p/kayakdash/pkg/meta"
	"github.com/spencer-p/kayakdash/pkg/timetricks"
	"github.com/spencer-p/kayakdash/pkg/visualize"
)

const (
	sessionName = "kayakdash"
	sessionView = "view"
	sessionDate = "date"

	viewDaily  = "daily"
	viewWeekly = "weekly"

	defaultSecret = "deadbeef"
	keySalt       = "kayakdash"
	// See https://developer.chrome.com/blog/cookie-max-age-expires.
	defaultMaxAge = 60 * 60 * 24 * 400 // 400 days in seconds.
)

//go:embed static
var content embed.FS

func newStore(sessionKey, encryptionKey string, secure bool) *sessions.CookieStore {
	if sessionKey == "" {
		sessionKey = defaultSecret
	}
	store := &sessions.CookieStore{
		Codecs: securecookie.CodecsFromPairs(
			[]byte(sessionKey),
			deriveKey(encryptionKey),
		),
		Options: &sessions.Options{
			Path:     "/",
			MaxAge:   defaultMaxAge,
			Secure:   secure,
			HttpOnly: true,
		},
	}
	store.MaxAge(defaultMaxAge)
	return store
}

// deriveKey stretches a password into an AES-256 key.
func deriveKey(password string) []byte {
	if password == "" {
		password = defaultSecret
	}
	return pbkdf2.Key([]byte(password), []byte(keySalt), 4096, 32, sha1.New)
}

type TemplateInput struct {
	View     string
	Date     string
	PrevDate string
	NextDate string
	Title    string

	PresentationElements []PresentationElement
	// Current is the recommendation for this hour when today is shown.
	Current *meta.Recommendation
	Hours   []string
	Colors  meta.Colors
}

type PresentationElement struct {
	Date     string
	ISODate  string
	Day      meta.Day
	Cells    []Cell
	DayStrip template.HTML
}

// Cell is one hour of the weekly heatmap.
type Cell struct {
	Color string
	Title string
}

// makeServerSideIndex serves the dashboard fully rendered on the server. The
// view and date last shown are remembered in the session.
func (s *Server) makeServerSideIndex() http.HandlerFunc {
	indexTemplate := template.Must(template.ParseFS(content, "static/index.template.html"))

	return func(w http.ResponseWriter, r *http.Request) {
		session, err := s.store.Get(r, sessionName)
		if err != nil {
			// A stale or forged cookie; start over with a fresh session.
			log.Printf("Ignoring session: %v", err)
		}

		view := r.FormValue("view")
		if view != viewDaily && view != viewWeekly {
			view, _ = session.Values[sessionView].(string)
		}
		if view != viewWeekly {
			view = viewDaily
		}

		dateString := r.FormValue("date")
		if dateString == "" {
			dateString, _ = session.Values[sessionDate].(string)
		}
		date := s.today()
		if dateString != "" {
			parsed, err := time.ParseInLocation(dateFmt, dateString, s.loc)
			if err != nil {
				log.Printf("Failed to read date %q: %v", dateString, err)
			} else {
				date = parsed
			}
		}

		session.Values[sessionView] = view
		session.Values[sessionDate] = date.Format(dateFmt)
		if err := session.Save(r, w); err != nil {
			log.Println("save session err", err)
		}

		opts := s.options.Options()
		tinput := TemplateInput{
			View:   view,
			Date:   date.Format(dateFmt),
			Title:  timetricks.Day(date),
			Hours:  hours(),
			Colors: opts.Colors,
		}

		step := 1
		if view == viewWeekly {
			step = timetricks.DaysPerWeek
			days, err := s.analyzer.Week(r.Context(), date, timetricks.DaysPerWeek, opts)
			if err != nil {
				w.Header().Set("Content-Type", "text/plain")
				w.WriteHeader(statusOf(err))
				fmt.Fprintf(w, "Failed to get the week of %s: %v", tinput.Date, err)
				log.Printf("Failed to fetch week of %s: %v", tinput.Date, err)
				return
			}
			for _, d := range days {
				tinput.PresentationElements = append(tinput.PresentationElements, presentationElement(d, opts))
			}
		} else {
			d := s.analyzer.Analyze(r.Context(), date, opts)
			elem := presentationElement(d, opts)
			elem.DayStrip = dayStrip(d, opts)
			tinput.PresentationElements = []PresentationElement{elem}
			if timetricks.SameDay(date, s.today()) {
				if rec, ok := meta.At(d.Recommendations, s.now().In(s.loc).Hour()); ok {
					tinput.Current = &rec
				}
			}
		}
		tinput.PrevDate = date.AddDate(0, 0, -step).Format(dateFmt)
		tinput.NextDate = date.AddDate(0, 0, step).Format(dateFmt)

		var b bytes.Buffer
		if err := indexTemplate.Execute(&b, tinput); err != nil {
			w.Header().Set("Content-Type", "text/plain")
			w.WriteHeader(http.StatusInternalServerError)
			fmt.Fprintf(w, "Failed to render the page")
			log.Printf("Failed to execute template: %v", err)
			return
		}
		w.Header().Add("Content-Type", "text/html")
		w.WriteHeader(http.StatusOK)
		w.Write(b.Bytes())
	}
}

func presentationElement(d meta.Day, opts meta.Options) PresentationElement {
	cells := make([]Cell, 24)
	for _, r := range d.Recommendations {
		cells[r.Hour] = Cell{
			Color: r.Rating.Color(opts.Colors),
			Title: r.String(),
		}
	}
	return PresentationElement{
		Date:    timetricks.Day(d.Date),
		ISODate: d.Date.Format(dateFmt),
		Day:     d,
		Cells:   cells,
	}
}

func dayStrip(d meta.Day, opts meta.Options) template.HTML {
	var b bytes.Buffer
	if _, err := visualize.NewDayStrip(d, opts).Encode(&b); err != nil {
		return ""
	}
	return template.HTML(b.String())
}

func hours() []string {
	result := make([]string, 24)
	for h := range result {
		result[h] = timetricks.HourClock(h)[:2]
	}
	return result
}
