package cli

import (
	"encoding/csv"
	"encoding/json"
	"os"

	"github.com/khalid-nowaf/triemap/pkg/trie"
)

// writeCsvItems writes every key/value pair of the trie to a CSV file with
// a header row.
func writeCsvItems(tr *trie.Trie[string], filePath string, keyKey string, valueKey string) error {
	file, err := os.Create(filePath)
	if err != nil {
		return err
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	if err := writer.Write([]string{keyKey, valueKey}); err != nil {
		return err
	}

	for _, item := range tr.Items() {
		if err := writer.Write([]string{item.Key, item.Value}); err != nil {
			return err
		}
	}
	return nil
}

// writeJsonItems writes every key/value pair of the trie as a JSON array of
// flat objects, one element per held key.
func writeJsonItems(tr *trie.Trie[string], filePath string, keyKey string, valueKey string) error {
	file, err := os.Create(filePath)
	if err != nil {
		return err
	}
	defer file.Close()

	encoder := json.NewEncoder(file)

	if _, err = file.Write([]byte("[")); err != nil {
		return err
	}

	for i, item := range tr.Items() {
		if i > 0 {
			if _, err = file.Write([]byte(",")); err != nil {
				return err
			}
		}
		if err = encoder.Encode(Record{keyKey: item.Key, valueKey: item.Value}); err != nil {
			return err
		}
	}

	if _, err = file.Write([]byte("]")); err != nil {
		return err
	}
	return nil
}
