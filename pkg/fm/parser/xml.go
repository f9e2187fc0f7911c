package parser

import (
	"bytes"
	"encoding/xml"
	"strings"
)

// xmlModel is the intermediate form of a feature model document.
// It mirrors the XML structure before typed tree construction.
type xmlModel struct {
	XMLName     xml.Name        `xml:"featureModel"`
	Name        string          `xml:"name,attr"`
	Features    []xmlFeature    `xml:"feature"`
	Constraints []xmlConstraint `xml:"constraints>constraint"`
}

type xmlFeature struct {
	Name      string       `xml:"name,attr"`
	Mandatory string       `xml:"mandatory,attr"`
	Group     *xmlGroup    `xml:"group"`
	Children  []xmlFeature `xml:"feature"`
}

type xmlGroup struct {
	Type     string       `xml:"type,attr"`
	Children []xmlFeature `xml:"feature"`
}

type xmlConstraint struct {
	EnglishStatement string `xml:"englishStatement"`
}

// isMandatory interprets the mandatory attribute; absence defaults to false.
func (f *xmlFeature) isMandatory() bool {
	return strings.EqualFold(strings.TrimSpace(f.Mandatory), "true")
}

// decodeModel decodes a feature model document from raw bytes.
func decodeModel(data []byte) (*xmlModel, error) {
	var doc xmlModel
	dec := xml.NewDecoder(bytes.NewReader(data))
	if err := dec.Decode(&doc); err != nil {
		return nil, err
	}
	return &doc, nil
}
