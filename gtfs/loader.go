package gtfs

import (
	"archive/zip"
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"path"
	"strconv"
	"strings"
	"time"

	"gopkg.in/resty.v1"
)

// NewGTFSIndexFromBytes builds an index from the raw bytes of a GTFS zip
func NewGTFSIndexFromBytes(data []byte) (*GTFSIndex, error) {
	return NewGTFSIndexFromReader(bytes.NewReader(data), int64(len(data)))
}

// NewGTFSIndexFromReader builds an index from a GTFS zip available as an io.ReaderAt
func NewGTFSIndexFromReader(r io.ReaderAt, size int64) (*GTFSIndex, error) {
	zr, err := zip.NewReader(r, size)
	if err != nil {
		return nil, err
	}
	g := NewGTFSIndex()
	if err := g.consumeZip(zr.File); err != nil {
		return nil, err
	}
	return g, nil
}

// NewGTFSIndexFromPath opens a local GTFS zip file and consumes required CSVs.
func NewGTFSIndexFromPath(p string) (*GTFSIndex, error) {
	zr, err := zip.OpenReader(p)
	if err != nil {
		return nil, err
	}
	defer zr.Close()
	g := NewGTFSIndex()
	if err := g.consumeZip(zr.File); err != nil {
		return nil, err
	}
	return g, nil
}

// NewGTFSIndexFromURL downloads a GTFS zip and indexes it in memory
func NewGTFSIndexFromURL(ctx context.Context, url string) (*GTFSIndex, error) {
	resp, err := resty.New().
		SetTimeout(2 * time.Minute).
		R().
		SetContext(ctx).
		Get(url)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", url, err)
	}
	if resp.StatusCode() != 200 {
		return nil, fmt.Errorf("HTTP %d from %s", resp.StatusCode(), url)
	}
	return NewGTFSIndexFromBytes(resp.Body())
}

func (g *GTFSIndex) consumeZip(files []*zip.File) error {
	for _, f := range files {
		switch strings.ToLower(path.Base(f.Name)) {
		case "routes.txt", "agency.txt":
			if err := g.consumeCSV(f); err != nil {
				return fmt.Errorf("%s: %w", f.Name, err)
			}
		}
	}
	return nil
}

func (g *GTFSIndex) consumeCSV(f *zip.File) error {
	r, err := f.Open()
	if err != nil {
		return err
	}
	defer r.Close()
	csvr := csv.NewReader(r)
	csvr.FieldsPerRecord = -1
	csvr.LazyQuotes = true
	rec, err := csvr.ReadAll()
	if err != nil {
		return err
	}
	if len(rec) == 0 {
		return nil
	}
	head := rec[0]
	if len(head) > 0 {
		head[0] = strings.TrimPrefix(head[0], "\ufeff")
	}
	idx := func(col string) int {
		for i, h := range head {
			if strings.EqualFold(strings.TrimSpace(h), col) {
				return i
			}
		}
		return -1
	}
	field := func(row []string, i int) string {
		if i < 0 || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}
	switch strings.ToLower(path.Base(f.Name)) {
	case "routes.txt":
		rID := idx("route_id")
		rSN := idx("route_short_name")
		rLN := idx("route_long_name")
		rType := idx("route_type")
		if rID < 0 {
			return nil
		}
		for _, row := range rec[1:] {
			route := Route{
				ID:        field(row, rID),
				ShortName: field(row, rSN),
				LongName:  field(row, rLN),
			}
			if route.ID == "" {
				continue
			}
			if typeInt, err := strconv.Atoi(field(row, rType)); err == nil {
				route.Type = typeInt
			}
			g.AddRoute(route)
		}
	case "agency.txt":
		agID := idx("agency_id")
		agTZ := idx("agency_timezone")
		agName := idx("agency_name")
		for _, row := range rec[1:] {
			g.AddAgency(Agency{
				ID:       field(row, agID),
				Name:     field(row, agName),
				Timezone: field(row, agTZ),
			})
		}
	}
	return nil
}
