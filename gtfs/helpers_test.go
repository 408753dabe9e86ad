package gtfs

import (
	"archive/zip"
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

const pathRoutesCSV = "route_id,agency_id,route_short_name,route_long_name,route_type,route_color\n" +
	"859,151,,Hoboken - 33rd Street,2,4D92FB\n" +
	"860,151,,Hoboken - World Trade Center,2,65C100\n" +
	"861,151,,Journal Square - 33rd Street,2,FF9900\n" +
	"862,151,,Newark - World Trade Center,2,D93A30\n"

const pathAgencyCSV = "agency_id,agency_name,agency_url,agency_timezone\n" +
	"151,Port Authority Trans-Hudson,http://www.panynj.gov/path/,America/New_York\n"

// buildZip returns an in-memory zip holding the given name -> content files
func buildZip(t *testing.T, files map[string]string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for name, content := range files {
		w, err := zw.Create(name)
		if err != nil {
			t.Fatalf("create %s: %v", name, err)
		}
		if _, err := w.Write([]byte(content)); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("close zip: %v", err)
	}
	return buf.Bytes()
}

func writeZip(t *testing.T, files map[string]string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "gtfs.zip")
	if err := os.WriteFile(p, buildZip(t, files), 0o644); err != nil {
		t.Fatalf("write zip: %v", err)
	}
	return p
}

func pathFeed() map[string]string {
	return map[string]string{
		"routes.txt": pathRoutesCSV,
		"agency.txt": pathAgencyCSV,
		"stops.txt":  "stop_id,stop_name\n26722,Newark\n",
	}
}
