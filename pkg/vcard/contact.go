package vcard

import (
	"errors"
	"io"
	"strings"
	"unicode"

	"github.com/google/uuid"
	"golang.org/x/text/unicode/norm"
	"gopkg.in/yaml.v3"
)

// Contact holds the properties written to the card.
type Contact struct {
	FirstName     string   `yaml:"first_name"`
	LastName      string   `yaml:"last_name"`
	FormattedName string   `yaml:"formatted_name"` // Defaults to "First Last"
	Org           string   `yaml:"org"`
	Title         string   `yaml:"title"`
	Phone         string   `yaml:"phone"`
	PhoneTypes    []string `yaml:"phone_types"`
	Email         string   `yaml:"email"`
	URL           string   `yaml:"url"`
	URLLabel      string   `yaml:"url_label"`
	UID           string   `yaml:"uid"`
}

// Default returns the sample card used when no contact file is given.
func Default() Contact {
	return Contact{
		FirstName:  "John",
		LastName:   "Smith",
		Org:        "The Best Company",
		Title:      "Entrepreneur",
		Phone:      "+1234567890",
		PhoneTypes: []string{"WORK", "voice"},
		Email:      "john.smith@gmail.com",
		URL:        "https://www.linkedin.com/in/johnsmith",
		URLLabel:   "LinkedIn",
	}
}

// LoadYAML decodes a contact from r. Unknown keys are rejected.
func LoadYAML(r io.Reader) (Contact, error) {
	var c Contact
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil {
		if errors.Is(err, io.EOF) {
			return Contact{}, errors.Join(ErrInvalidContact, errors.New("file is empty"))
		}
		return Contact{}, errors.Join(ErrInvalidContact, err)
	}
	if err := c.Validate(); err != nil {
		return Contact{}, err
	}
	return c, nil
}

// Name returns the formatted name, falling back to "First Last".
func (c Contact) Name() string {
	if fn := strings.TrimSpace(c.FormattedName); fn != "" {
		return fn
	}
	return strings.TrimSpace(strings.TrimSpace(c.FirstName) + " " + strings.TrimSpace(c.LastName))
}

// Validate checks the card has a name.
func (c Contact) Validate() error {
	if c.Name() == "" {
		return ErrEmptyName
	}
	return nil
}

// WithDeterministicUID returns a copy of c whose UID is a name-based
// (SHA-1) UUID of the formatted name and email.
func (c Contact) WithDeterministicUID() Contact {
	key := strings.ToLower(norm.NFC.String(c.Name())) + "\x00" + strings.ToLower(strings.TrimSpace(c.Email))
	c.UID = "urn:uuid:" + uuid.NewSHA1(uuid.NameSpaceURL, []byte("vcard:"+key)).String()
	return c
}

// Encode renders c as vCard 3.0 text.
func (c Contact) Encode() (string, error) {
	if err := c.Validate(); err != nil {
		return "", err
	}

	lines := []string{"BEGIN:VCARD", "VERSION:3.0"}

	last, first := clean(c.LastName), clean(c.FirstName)
	if last != "" || first != "" {
		lines = append(lines, "N:"+escape(last)+";"+escape(first))
	}
	lines = append(lines, "FN:"+escape(clean(c.Name())))

	if v := clean(c.Org); v != "" {
		lines = append(lines, "ORG:"+escape(v))
	}
	if v := clean(c.Title); v != "" {
		lines = append(lines, "TITLE:"+escape(v))
	}
	if v := telURI(c.Phone); v != "" {
		prop := "TEL"
		if types := paramValues(c.PhoneTypes); len(types) > 0 {
			prop += ";type=" + strings.Join(types, ",")
		}
		lines = append(lines, prop+";value=uri:tel:"+v)
	}
	if v := singleLine(c.Email); v != "" {
		lines = append(lines, "EMAIL:"+v)
	}
	if v := singleLine(c.URL); v != "" {
		prop := "URL"
		if label := paramValue(c.URLLabel); label != "" {
			prop += ";type=" + label
		}
		lines = append(lines, prop+":"+v)
	}
	if v := singleLine(c.UID); v != "" {
		lines = append(lines, "UID:"+v)
	}

	lines = append(lines, "END:VCARD")
	return strings.Join(lines, "\n"), nil
}

func clean(s string) string {
	return norm.NFC.String(strings.TrimSpace(s))
}

// singleLine drops control characters so a value cannot start a new
// property line.
func singleLine(s string) string {
	return clean(strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, s))
}

// paramValue makes s a valid RFC 2426 param-value: control characters
// and double quotes are dropped, and values holding ':', ';' or ',' are
// quoted.
func paramValue(s string) string {
	v := strings.ReplaceAll(singleLine(s), `"`, "")
	if strings.ContainsAny(v, ":;,") {
		return `"` + v + `"`
	}
	return v
}

func paramValues(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if v := paramValue(s); v != "" {
			out = append(out, v)
		}
	}
	return out
}

// telURI strips whitespace and control characters, which tel: URIs do
// not allow.
func telURI(phone string) string {
	return strings.Join(strings.Fields(singleLine(phone)), "")
}

var textEscaper = strings.NewReplacer(
	`\`, `\\`,
	`,`, `\,`,
	`;`, `\;`,
	"\r\n", `\n`,
	"\n", `\n`,
)

// escape applies the TEXT value escaping of RFC 2426 section 4.
func escape(s string) string {
	return textEscaper.Replace(s)
}
