package cli

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/khalid-nowaf/triemap/pkg/trie"
	"gopkg.in/yaml.v3"
)

// Record is one row or object of an input file, keyed by column/field name.
type Record map[string]string

// LoadFlags are shared by every command that loads word files.
type LoadFlags struct {
	Files    []string `arg:"" type:"existingfile" help:"Input files containing keys in CSV, JSON, or YAML format"`
	KeyKey   string   `help:"Column or field holding the key" default:"key"`
	ValueKey string   `help:"Column or field holding the value" default:"value"`
}

// Stats tallies what happened while loading word files into the trie.
type Stats struct {
	Loaded     int // keys installed with a new value
	Duplicates int // keys that already held a value
	Rejected   int // keys refused by the alphabet
}

func (s *Stats) String() string {
	return fmt.Sprintf("loaded: %d, duplicates: %d, rejected keys: %d", s.Loaded, s.Duplicates, s.Rejected)
}

// loadFiles parses every input file and inserts its records into the trie.
// Keys outside the alphabet are counted and skipped rather than aborting
// the whole load.
func loadFiles(ctx *Context, flags *LoadFlags, stats *Stats) error {
	for _, file := range flags.Files {
		err := parseFile(file, func(record Record) error {
			key := record[flags.KeyKey]
			added, err := ctx.Trie.Insert(key, record[flags.ValueKey])
			if errors.Is(err, trie.ErrAlphabet) {
				fmt.Printf("skipping %q: %v\n", key, err)
				stats.Rejected++
				return nil
			}
			if err != nil {
				return err
			}
			if added {
				stats.Loaded++
			} else {
				stats.Duplicates++
			}
			return nil
		})
		if err != nil {
			return err
		}
	}
	return nil
}

// parseFile dispatches on the file extension: .json and .yaml/.yml get
// their own parsers, everything else is read as CSV.
func parseFile(file string, onEachRecord func(record Record) error) error {
	switch strings.ToLower(filepath.Ext(file)) {
	case ".json":
		return parseJson(file, onEachRecord)
	case ".yaml", ".yml":
		return parseYaml(file, onEachRecord)
	default:
		return parseCsv(file, onEachRecord)
	}
}

// parseJson streams a JSON array of flat objects, decoding one element at a
// time.
func parseJson(filepath string, onEachRecord func(record Record) error) error {
	file, err := os.Open(filepath)
	if err != nil {
		return err
	}
	defer file.Close()

	decoder := json.NewDecoder(file)

	// Read opening bracket of the array
	if _, err = decoder.Token(); err != nil {
		return err
	}

	// Decode each element of the array
	for decoder.More() {
		record := Record{}
		if err := decoder.Decode(&record); err != nil {
			return err
		}
		if err := onEachRecord(record); err != nil {
			return err
		}
	}

	// Read closing bracket of the array
	_, err = decoder.Token()
	return err
}

// parseCsv reads a CSV file whose first line is the header and maps every
// row into a Record keyed by the header names.
func parseCsv(filepath string, onEachRecord func(record Record) error) error {
	file, err := os.Open(filepath)
	if err != nil {
		return err
	}
	defer file.Close()

	reader := csv.NewReader(file)

	headers, err := reader.Read()
	if err != nil {
		return err
	}

	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}

		record := make(Record)
		for i, value := range row {
			record[headers[i]] = value
		}

		if err := onEachRecord(record); err != nil {
			return err
		}
	}
	return nil
}

// parseYaml reads a YAML list of flat mappings.
func parseYaml(filepath string, onEachRecord func(record Record) error) error {
	data, err := os.ReadFile(filepath)
	if err != nil {
		return err
	}

	records := []Record{}
	if err := yaml.Unmarshal(data, &records); err != nil {
		return err
	}

	for _, record := range records {
		if err := onEachRecord(record); err != nil {
			return err
		}
	}
	return nil
}
