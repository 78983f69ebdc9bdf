// Command cdisgen reads the SISO-REF-010 XML standard and emits
// internal/enumerations/catalog.go: named, typed, range-aware enumerations
// and bitfield structs, per spec.md §4.A. It is a build-time tool, not part
// of the gateway's runtime; it is grounded on dis_rs/build.rs from the
// original Rust project this gateway is descended from, adapted to Go's
// total-function idiom (From/Into/String) instead of Rust's payload-carrying
// enum variants.
package main

import (
	"encoding/xml"
	"flag"
	"fmt"
	"log"
	"os"
	"regexp"
	"strconv"
	"strings"
	"text/template"
)

var (
	refXMLPath = flag.String("ref", "SISO-REF-010.xml", "path to the SISO-REF-010 XML standard")
	outPath    = flag.String("out", "internal/enumerations/catalog.go", "generated catalog output path")
)

// selection lists the enumeration UIDs this gateway's codec kernels actually
// reference, mirroring dis_rs/build.rs's ENUM_UIDS table. Unknown UIDs are a
// build error; this is the compile-time selection list spec.md §4.A requires.
var selection = []uid{
	{ID: 4, NameOverride: "PduType"},
	{ID: 6, NameOverride: "ForceID"},
	{ID: 7, NameOverride: "EntityKind"},
	{ID: 13, NameOverride: "EncodingClass"},
}

// bitfieldSelection lists bitfield UIDs to emit as structs, mirroring
// dis_rs/build.rs's BITFIELD_UIDS ranges. Empty: none of the four selected
// enumerations above decompose a field the codec kernels need as a bitfield
// struct today (EncodingClass's DatabaseIndex cross-reference is handled at
// the record level by dis.EncodingScheme instead, per spec.md §9's design
// note) — the extraction and generation code below still fully implements
// bitfield support so a future selection can use it without further work.
var bitfieldSelection []uid

type uid struct {
	ID           int
	NameOverride string
	SizeOverride int
}

// siso is the subset of the SISO-REF-010 XML schema this generator reads: a
// flat list of <enum> elements (each with <enumrow> basic-value arms and
// <enumrow_range> interval arms) and <bitfield> elements (each with
// <bitfieldrow> bit-slice descriptors).
type siso struct {
	XMLName   string         `xml:"ebv"`
	Enums     []sisoEnum     `xml:"cot>enum"`
	Bitfields []sisoBitfield `xml:"cot>bitfield"`
}

type sisoEnum struct {
	UID       int                `xml:"uid,attr"`
	Name      string             `xml:"name,attr"`
	Size      int                `xml:"size,attr"`
	Rows      []sisoEnumRow      `xml:"enumrow"`
	RangeRows []sisoEnumRangeRow `xml:"enumrow_range"`
}

type sisoEnumRow struct {
	Value       string `xml:"value,attr"`
	Description string `xml:"description,attr"`
	Xref        string `xml:"xref,attr"`
}

type sisoEnumRangeRow struct {
	ValueMin    string `xml:"value_min,attr"`
	ValueMax    string `xml:"value_max,attr"`
	Description string `xml:"description,attr"`
}

type sisoBitfield struct {
	UID  int               `xml:"uid,attr"`
	Name string            `xml:"name,attr"`
	Size int               `xml:"size,attr"`
	Rows []sisoBitfieldRow `xml:"bitfieldrow"`
}

type sisoBitfieldRow struct {
	Name        string `xml:"name,attr"`
	BitPosition int    `xml:"bit_position,attr"`
	Length      int    `xml:"length,attr"`
	Xref        string `xml:"xref,attr"`
}

func main() {
	flag.Parse()

	f, err := os.Open(*refXMLPath)
	if err != nil {
		log.Fatalf("cdisgen: cannot open %s: %v", *refXMLPath, err)
	}
	defer f.Close()

	var doc siso
	if err := xml.NewDecoder(f).Decode(&doc); err != nil {
		log.Fatalf("cdisgen: cannot parse %s: %v", *refXMLPath, err)
	}

	byUID := make(map[int]sisoEnum, len(doc.Enums))
	for _, e := range doc.Enums {
		byUID[e.UID] = e
	}
	bitfieldsByUID := make(map[int]sisoBitfield, len(doc.Bitfields))
	for _, b := range doc.Bitfields {
		bitfieldsByUID[b.UID] = b
	}

	var generated []generatedEnum
	for _, sel := range selection {
		e, ok := byUID[sel.ID]
		if !ok {
			log.Fatalf("cdisgen: unknown enumeration uid %d in selection list", sel.ID)
		}
		generated = append(generated, buildEnum(sel, e))
	}

	var generatedFields []generatedBitfield
	for _, sel := range bitfieldSelection {
		b, ok := bitfieldsByUID[sel.ID]
		if !ok {
			log.Fatalf("cdisgen: unknown bitfield uid %d in selection list", sel.ID)
		}
		generatedFields = append(generatedFields, buildBitfield(sel, b))
	}

	out, err := os.Create(*outPath)
	if err != nil {
		log.Fatalf("cdisgen: cannot create %s: %v", *outPath, err)
	}
	defer out.Close()

	page := catalogPage{Enums: generated, Bitfields: generatedFields}
	if err := catalogTemplate.Execute(out, page); err != nil {
		log.Fatalf("cdisgen: cannot render template: %v", err)
	}
	log.Printf("cdisgen: wrote %d enumerations and %d bitfields to %s", len(generated), len(generatedFields), *outPath)
}

type catalogPage struct {
	Enums     []generatedEnum
	Bitfields []generatedBitfield
}

type generatedEnum struct {
	GoName  string
	LowName string
	Arms    []generatedArm
	Ranges  []generatedRange
}

type generatedArm struct {
	GoName      string
	Value       int
	Description string
}

// generatedRange is a value-interval arm (spec.md §4.A's "range" variant).
// Unlike a Rust payload-carrying enum variant, the Go rendering keeps the
// underlying type a plain integer and checks range membership in String,
// formatting as "<description> (<raw>)".
type generatedRange struct {
	Min, Max    int
	Description string
}

type generatedBitfield struct {
	GoName string
	Fields []generatedBitfieldField
}

type generatedBitfieldField struct {
	GoName      string
	BitPosition int
	Length      int
	IsBool      bool
	XrefGoName  string // non-empty when this slice cross-references a selected enum
	Mask        int
}

var identSanitizer = regexp.MustCompile(`[ \-/.,'#]`)
var parenSanitizer = strings.NewReplacer("(", "_", ")", "_")

// sanitizeIdent implements the identifier sanitisation rule from spec.md
// §4.A: strip space - / . , ' #, replace ( ) with _; if the first character
// is a digit, prefix _ and append the UID to guarantee uniqueness.
func sanitizeIdent(raw string, uid int) string {
	s := parenSanitizer.Replace(raw)
	s = identSanitizer.ReplaceAllString(s, "")
	if s == "" {
		s = fmt.Sprintf("Value%d", uid)
	}
	if s[0] >= '0' && s[0] <= '9' {
		s = fmt.Sprintf("_%s_%d", s, uid)
	}
	return s
}

func buildEnum(sel uid, e sisoEnum) generatedEnum {
	name := sel.NameOverride
	if name == "" {
		name = sanitizeIdent(e.Name, e.UID)
	}
	ge := generatedEnum{GoName: name, LowName: strings.ToLower(name[:1]) + name[1:]}
	for _, row := range e.Rows {
		v, err := strconv.Atoi(row.Value)
		if err != nil {
			log.Printf("cdisgen: skipping malformed enumrow %q in uid %d: %v", row.Value, e.UID, err)
			continue
		}
		if row.Xref != "" {
			// The original Rust generator never implements CrossRef arms
			// either (dis_rs/build.rs's quote_from_arms leaves it a
			// todo!()); fold it to a basic arm rather than fail the build,
			// and say so.
			log.Printf("cdisgen: uid %d value %d has xref %q; cross-reference arms are not generated, falling back to a basic arm", e.UID, v, row.Xref)
		}
		ge.Arms = append(ge.Arms, generatedArm{
			GoName:      name + sanitizeIdent(row.Description, v),
			Value:       v,
			Description: row.Description,
		})
	}
	for _, row := range e.RangeRows {
		min, errMin := strconv.Atoi(row.ValueMin)
		max, errMax := strconv.Atoi(row.ValueMax)
		if errMin != nil || errMax != nil {
			log.Printf("cdisgen: skipping malformed enumrow_range [%q,%q] in uid %d", row.ValueMin, row.ValueMax, e.UID)
			continue
		}
		ge.Ranges = append(ge.Ranges, generatedRange{Min: min, Max: max, Description: row.Description})
	}
	return ge
}

func buildBitfield(sel uid, b sisoBitfield) generatedBitfield {
	name := sel.NameOverride
	if name == "" {
		name = sanitizeIdent(b.Name, b.UID)
	}
	gb := generatedBitfield{GoName: name}
	for _, row := range b.Rows {
		length := row.Length
		if length == 0 {
			length = 1
		}
		field := generatedBitfieldField{
			GoName:      sanitizeIdent(row.Name, b.UID),
			BitPosition: row.BitPosition,
			Length:      length,
			IsBool:      length == 1,
			Mask:        (1 << length) - 1,
		}
		if row.Xref != "" {
			if xrefUID, err := strconv.Atoi(row.Xref); err == nil {
				for _, s := range selection {
					if s.ID == xrefUID {
						field.XrefGoName = s.NameOverride
					}
				}
			}
		}
		gb.Fields = append(gb.Fields, field)
	}
	return gb
}

// catalogTemplate renders the generated enumerations and bitfields described
// by spec.md §4.A: a total From, an inverse Into, a String that falls back
// to named ranges and finally "Unspecified (N)", and (for bitfields) a
// struct with one field per bit slice plus Parse/Into pack-unpack methods.
var catalogTemplate = template.Must(template.New("catalog").Funcs(template.FuncMap{
	"hex": func(v int) string { return fmt.Sprintf("0x%X", v) },
}).Parse(`// Code generated by cmd/cdisgen from SISO-REF-010. DO NOT EDIT.
package enumerations

import "fmt"

{{range .Enums}}
// {{.GoName}} is generated from a selected SISO-REF-010 enumeration. From is
// total: any raw value outside the named arms and ranges still returns a
// valid {{.GoName}}, rendering via String as "Unspecified (N)".
type {{.GoName}} uint8

const (
{{range .Arms}}	{{.GoName}} {{$.GoName}} = {{.Value}}
{{end}})

var {{.LowName}}Names = map[{{.GoName}}]string{
{{range .Arms}}	{{.GoName}}: {{printf "%q" .Description}},
{{end}}}
{{if .Ranges}}
var {{.LowName}}Ranges = []struct {
	Min, Max    int
	Description string
}{
{{range .Ranges}}	{Min: {{.Min}}, Max: {{.Max}}, Description: {{printf "%q" .Description}}},
{{end}}}
{{end}}
// {{.GoName}}From is total: an unmatched raw value still returns a valid
// {{.GoName}}, formatted by String as "Unspecified (N)".
func {{.GoName}}From(raw uint8) {{.GoName}} { return {{.GoName}}(raw) }

// Into is {{.GoName}}From's inverse; round-trips every value, including
// unspecified ones.
func (v {{.GoName}}) Into() uint8 { return uint8(v) }

func (v {{.GoName}}) String() string {
	if name, ok := {{.LowName}}Names[v]; ok {
		return name
	}
{{if .Ranges}}	for _, r := range {{.LowName}}Ranges {
		if int(v) >= r.Min && int(v) <= r.Max {
			return fmt.Sprintf("%s (%d)", r.Description, uint8(v))
		}
	}
{{end}}	return fmt.Sprintf("Unspecified (%d)", uint8(v))
}
{{end}}
{{range .Bitfields}}
// {{.GoName}} is a generated bitfield struct: one field per declared bit
// slice, boolean when the slice is a single bit, otherwise a raw integer or
// (when the row carries an xref) a cross-referenced enumeration.
type {{.GoName}} struct {
{{range .Fields}}	{{.GoName}} {{if .IsBool}}bool{{else if .XrefGoName}}{{.XrefGoName}}{{else}}uint32{{end}}
{{end}}}

// Parse{{.GoName}} unpacks raw's declared bit slices into a {{.GoName}}.
func Parse{{.GoName}}(raw uint32) {{.GoName}} {
	return {{.GoName}}{
{{range .Fields}}		{{.GoName}}: {{if .IsBool}}raw&(1<<{{.BitPosition}}) != 0{{else if .XrefGoName}}{{.XrefGoName}}From(uint8((raw >> {{.BitPosition}}) & {{hex .Mask}})){{else}}(raw >> {{.BitPosition}}) & {{hex .Mask}}{{end}},
{{end}}	}
}

// Into repacks a {{.GoName}} into its raw bit-packed representation.
func (b {{.GoName}}) Into() uint32 {
	var raw uint32
{{range .Fields}}	raw |= {{if .IsBool}}boolBit(b.{{.GoName}}, {{.BitPosition}}){{else if .XrefGoName}}uint32(b.{{.GoName}}.Into()) << {{.BitPosition}}{{else}}(b.{{.GoName}} & {{hex .Mask}}) << {{.BitPosition}}{{end}}
{{end}}	return raw
}
{{end}}
{{if .Bitfields}}
func boolBit(v bool, position int) uint32 {
	if v {
		return 1 << uint(position)
	}
	return 0
}
{{end}}
`))
