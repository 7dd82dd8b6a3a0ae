package models

// GoodType identifies which manufacturing tier a good belongs to.
type GoodType string

const (
	TypeRaw          GoodType = "raw"
	TypeSemiFinished GoodType = "semi-finished"
	TypeFinished     GoodType = "finished"
)

type Good struct {
	ID          int            `json:"id" db:"id"`
	Name        string         `json:"name" db:"name"`
	Type        GoodType       `json:"type" db:"type"`
	Cost        float64        `json:"cost" db:"cost"`
	ProcessTime float64        `json:"processTime" db:"process_time"`
	Archived    bool           `json:"archived" db:"archived"`
	Vendor      string         `json:"vendor,omitempty" db:"vendor"`
	Price       float64        `json:"price,omitempty" db:"price"`
	Properties  []Property     `json:"properties" db:"properties"`
	Components  []ComponentRef `json:"components" db:"components"`
}

type Property struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// ComponentRef is a weak by-id link to another good, resolved at
// validation time. Not an ownership relation.
type ComponentRef struct {
	ID       int     `json:"id"`
	Quantity float64 `json:"quantity"`
}

// Redacted returns a copy of the good with the fields that carry no
// meaning for its type zeroed out: raw goods have no price, semi-finished
// goods have neither price nor vendor, finished goods have no vendor.
// Redacting an already-redacted good is a no-op. Persisted state is
// never touched.
func (g Good) Redacted() Good {
	switch g.Type {
	case TypeRaw:
		g.Price = 0
	case TypeSemiFinished:
		g.Price = 0
		g.Vendor = ""
	case TypeFinished:
		g.Vendor = ""
	}
	return g
}

// RedactAll redacts a list element-wise, preserving order.
func RedactAll(goods []Good) []Good {
	redacted := make([]Good, len(goods))
	for i, g := range goods {
		redacted[i] = g.Redacted()
	}
	return redacted
}
