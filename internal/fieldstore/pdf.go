// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package fieldstore

import (
	"fmt"
	"os"
	"unicode/utf16"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"
)

// PDFStore implements Store over a PDF AcroForm using pdfcpu.
type PDFStore struct {
	ctx    *model.Context
	fields []Field

	// dicts maps field IDs to their field dictionaries for write-back.
	dicts map[string]types.Dict
}

// OpenPDF reads a PDF and walks its AcroForm field tree. Documents
// without an AcroForm yield an empty field list; callers may fall back to
// page-text extraction.
func OpenPDF(path string) (*PDFStore, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open PDF: %w", err)
	}
	defer f.Close()

	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed

	ctx, err := api.ReadContext(f, conf)
	if err != nil {
		return nil, fmt.Errorf("failed to read PDF context: %w", err)
	}
	if err := ctx.EnsurePageCount(); err != nil {
		return nil, fmt.Errorf("failed to ensure page count: %w", err)
	}

	store := &PDFStore{ctx: ctx, dicts: make(map[string]types.Dict)}
	if err := store.loadFields(); err != nil {
		return nil, err
	}
	return store, nil
}

// ListFields implements Store.
func (s *PDFStore) ListFields() ([]Field, error) {
	out := make([]Field, len(s.fields))
	copy(out, s.fields)
	return out, nil
}

// SetFieldText implements Store. The new value is written as the field's
// V entry; widget appearance streams are dropped and NeedAppearances set
// so viewers regenerate the rendering.
func (s *PDFStore) SetFieldText(fieldID, text string) error {
	dict, ok := s.dicts[fieldID]
	if !ok {
		return fmt.Errorf("form field %q not found", fieldID)
	}

	for i := range s.fields {
		if s.fields[i].ID != fieldID {
			continue
		}
		if s.fields[i].ReadOnly {
			return fmt.Errorf("form field %q is read-only", fieldID)
		}
		s.fields[i].Text = text
	}

	dict["V"] = utf16HexLiteral(text)
	delete(dict, "AP")

	return s.setNeedAppearances()
}

// Save implements Store.
func (s *PDFStore) Save(outputPath string) error {
	if err := api.WriteContextFile(s.ctx, outputPath); err != nil {
		return fmt.Errorf("failed to write PDF: %w", err)
	}
	return nil
}

// loadFields walks the AcroForm Fields array collecting text fields.
func (s *PDFStore) loadFields() error {
	rootDict, err := s.ctx.Catalog()
	if err != nil {
		return fmt.Errorf("failed to get catalog: %w", err)
	}

	acroFormObj, found := rootDict.Find("AcroForm")
	if !found {
		return nil
	}
	acroFormDict, err := s.ctx.DereferenceDict(acroFormObj)
	if err != nil || acroFormDict == nil {
		return nil
	}

	fieldsObj, found := acroFormDict.Find("Fields")
	if !found {
		return nil
	}
	fieldsArray, err := s.ctx.DereferenceArray(fieldsObj)
	if err != nil {
		return fmt.Errorf("failed to dereference Fields array: %w", err)
	}

	for i, fieldRef := range fieldsArray {
		if err := s.loadField(fieldRef, i); err != nil {
			// A single malformed field should not sink the document.
			continue
		}
	}
	return nil
}

// loadField extracts one field dictionary if it is a text field.
func (s *PDFStore) loadField(fieldObj types.Object, index int) error {
	fieldDict, err := s.ctx.DereferenceDict(fieldObj)
	if err != nil || fieldDict == nil {
		return fmt.Errorf("failed to dereference field %d", index)
	}

	// Only text fields (FT == Tx) carry free text worth scanning.
	ftObj, found := fieldDict.Find("FT")
	if !found {
		return nil
	}
	ftName, err := s.ctx.DereferenceName(ftObj, model.V10, nil)
	if err != nil || ftName != "Tx" {
		return nil
	}

	field := Field{ID: fmt.Sprintf("field_%d", index), Page: 1}

	if nameObj, found := fieldDict.Find("T"); found {
		if name, err := s.ctx.DereferenceStringOrHexLiteral(nameObj, model.V10, nil); err == nil && name != "" {
			field.ID = name
		}
	}
	if valueObj, found := fieldDict.Find("V"); found {
		if val, err := s.ctx.DereferenceStringOrHexLiteral(valueObj, model.V10, nil); err == nil {
			field.Text = val
		}
	}
	if flagsObj, found := fieldDict.Find("Ff"); found {
		if flags, err := s.ctx.DereferenceInteger(flagsObj); err == nil && flags != nil {
			field.ReadOnly = (*flags & 1) != 0
		}
	}
	field.Page = s.pageOf(fieldDict)

	s.fields = append(s.fields, field)
	s.dicts[field.ID] = fieldDict
	return nil
}

// pageOf resolves the 1-based page number of a field's widget by matching
// its P entry against the document's page dictionaries.
func (s *PDFStore) pageOf(fieldDict types.Dict) int {
	pObj, found := fieldDict.Find("P")
	if !found {
		// Widget may live in a Kids entry.
		if kidsObj, ok := fieldDict.Find("Kids"); ok {
			if kids, err := s.ctx.DereferenceArray(kidsObj); err == nil && len(kids) > 0 {
				if kidDict, err := s.ctx.DereferenceDict(kids[0]); err == nil && kidDict != nil {
					if kp, ok := kidDict.Find("P"); ok {
						pObj = kp
						found = true
					}
				}
			}
		}
	}
	if !found {
		return 1
	}

	indRef, ok := pObj.(types.IndirectRef)
	if !ok {
		return 1
	}
	for pageNr := 1; pageNr <= s.ctx.PageCount; pageNr++ {
		pageRef, err := s.ctx.PageDictIndRef(pageNr)
		if err != nil || pageRef == nil {
			continue
		}
		if pageRef.ObjectNumber == indRef.ObjectNumber {
			return pageNr
		}
	}
	return 1
}

// setNeedAppearances flags the AcroForm so viewers rebuild field
// appearances after a value change.
func (s *PDFStore) setNeedAppearances() error {
	rootDict, err := s.ctx.Catalog()
	if err != nil {
		return fmt.Errorf("failed to get catalog: %w", err)
	}
	acroFormObj, found := rootDict.Find("AcroForm")
	if !found {
		return nil
	}
	acroFormDict, err := s.ctx.DereferenceDict(acroFormObj)
	if err != nil || acroFormDict == nil {
		return nil
	}
	acroFormDict["NeedAppearances"] = types.Boolean(true)
	return nil
}

// utf16HexLiteral encodes a string as a UTF-16BE hex literal with BOM, so
// bracket tags and arbitrary narrative text survive PDF string escaping.
func utf16HexLiteral(s string) types.HexLiteral {
	encoded := utf16.Encode([]rune(s))
	buf := make([]byte, 0, 2*len(encoded)+2)
	buf = append(buf, 0xFE, 0xFF)
	for _, u := range encoded {
		buf = append(buf, byte(u>>8), byte(u))
	}
	return types.NewHexLiteral(buf)
}
