// Package catalog registers the schema objects the CLI can decode, validate
// and export by kind name.
package catalog

import (
	"fmt"
	"sort"
	"strings"

	"github.com/reoring/ledgerskema"
	"github.com/reoring/ledgerskema/jsonschema"
	"github.com/reoring/ledgerskema/requests"
	"github.com/reoring/ledgerskema/transactions"
)

// Format is the encoding of an input document.
type Format int

const (
	JSON Format = iota
	YAML
)

// FormatOf picks the input format from a file name.
func FormatOf(name string) Format {
	n := strings.ToLower(name)
	if strings.HasSuffix(n, ".yaml") || strings.HasSuffix(n, ".yml") {
		return YAML
	}
	return JSON
}

// Kind describes one registered schema object.
type Kind struct {
	Name        string
	Description string
	decode      func(data []byte, f Format, opt ledgerskema.DecodeOpt) (ledgerskema.Model, error)
	schema      func() (*jsonschema.Schema, error)
}

// Decode builds the schema object from a document. Construction failures are
// returned as ledgerskema.Issues.
func (k Kind) Decode(data []byte, f Format, opt ledgerskema.DecodeOpt) (ledgerskema.Model, error) {
	return k.decode(data, f, opt)
}

// Schema exports the JSON Schema of the kind.
func (k Kind) Schema() (*jsonschema.Schema, error) { return k.schema() }

func kind[T ledgerskema.Model](name, desc string) Kind {
	return Kind{
		Name:        name,
		Description: desc,
		decode: func(data []byte, f Format, opt ledgerskema.DecodeOpt) (ledgerskema.Model, error) {
			var (
				v   T
				err error
			)
			if f == YAML {
				v, err = ledgerskema.FromYAML[T](data, opt)
			} else {
				v, err = ledgerskema.FromJSON[T](data, opt)
			}
			if err != nil {
				return nil, err
			}
			return v, nil
		},
		schema: func() (*jsonschema.Schema, error) {
			s, err := jsonschema.Of[T]()
			if err != nil {
				return nil, err
			}
			s.Title = name
			s.Description = desc
			return s, nil
		},
	}
}

var registry = map[string]Kind{}

func register(k Kind) { registry[k.Name] = k }

func init() {
	register(kind[requests.AccountObjects]("account_objects", "account_objects request"))
	register(kind[requests.LedgerEntry]("ledger_entry", "ledger_entry request"))
	register(kind[requests.ChannelAuthorize]("channel_authorize", "channel_authorize request"))
	register(kind[transactions.URITokenMint]("uritoken_mint", "URITokenMint transaction"))
	register(kind[transactions.TransactionMetadata]("transaction_metadata", "metadata of an applied transaction"))
}

// Lookup returns the kind registered under name.
func Lookup(name string) (Kind, error) {
	k, ok := registry[name]
	if !ok {
		return Kind{}, fmt.Errorf("unknown kind %q (known: %s)", name, strings.Join(Names(), ", "))
	}
	return k, nil
}

// Names lists the registered kinds in lexical order.
func Names() []string {
	out := make([]string, 0, len(registry))
	for n := range registry {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}
