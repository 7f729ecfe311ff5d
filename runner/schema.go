package runner

import (
	"encoding/json"
	"fmt"

	"github.com/katalvlaran/deadstate/classify"
	"github.com/xeipuuv/gojsonschema"
)

// transactionLogSchema is the embedded JSON Schema every decoded
// transaction log is validated against before a single transaction
// reaches the core, grounded on yesoreyeram-thaiyyal's
// schema_validator.go wiring of gojsonschema.
const transactionLogSchema = `{
	"$schema": "http://json-schema.org/draft-04/schema#",
	"type": "array",
	"items": {
		"type": "object",
		"oneOf": [
			{
				"properties": {
					"kind": {"enum": ["add", "not_reachable"]},
					"u": {"type": "integer", "minimum": 0},
					"v": {"type": "integer", "minimum": 0}
				},
				"required": ["kind", "u", "v"],
				"additionalProperties": false
			},
			{
				"properties": {
					"kind": {"enum": ["close", "live"]},
					"v": {"type": "integer", "minimum": 0}
				},
				"required": ["kind", "v"],
				"additionalProperties": false
			}
		]
	}
}`

// wireTransaction is transaction log's JSON wire shape (spec section
// 6.1): a tagged object, "add"/"not_reachable" carrying two vertices,
// "close"/"live" carrying one.
type wireTransaction struct {
	Kind string `json:"kind"`
	U    int    `json:"u"`
	V    int    `json:"v"`
}

func (w wireTransaction) toTransaction() (classify.Transaction, error) {
	switch w.Kind {
	case "add":
		return classify.Transaction{Kind: classify.TxAdd, V1: w.U, V2: w.V}, nil
	case "close":
		return classify.Transaction{Kind: classify.TxClose, V1: w.V}, nil
	case "live":
		return classify.Transaction{Kind: classify.TxLive, V1: w.V}, nil
	case "not_reachable":
		return classify.Transaction{Kind: classify.TxNotReachable, V1: w.U, V2: w.V}, nil
	default:
		return classify.Transaction{}, fmt.Errorf("%w: unrecognized kind %q", ErrDecode, w.Kind)
	}
}

// DecodeTransactionLog validates raw against transactionLogSchema and,
// if valid, decodes it into a transaction sequence ready for Run. A
// schema failure is reported as ErrSchemaInvalid with every violation
// gojsonschema found; a JSON syntax error is reported as ErrDecode.
func DecodeTransactionLog(raw []byte) ([]classify.Transaction, error) {
	schemaLoader := gojsonschema.NewStringLoader(transactionLogSchema)
	documentLoader := gojsonschema.NewBytesLoader(raw)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	if !result.Valid() {
		msg := ""
		for _, e := range result.Errors() {
			msg += e.String() + "; "
		}
		return nil, fmt.Errorf("%w: %s", ErrSchemaInvalid, msg)
	}

	var wire []wireTransaction
	if err := json.Unmarshal(raw, &wire); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}

	txs := make([]classify.Transaction, 0, len(wire))
	for _, w := range wire {
		tx, err := w.toTransaction()
		if err != nil {
			return nil, err
		}
		txs = append(txs, tx)
	}
	return txs, nil
}

// expectedOutput mirrors Output for decoding a spec section 6.2
// expected-output file.
type expectedOutput = Output

// DecodeExpectedOutput decodes an expected-output file's four sorted
// identifier lists.
func DecodeExpectedOutput(raw []byte) (Output, error) {
	var out expectedOutput
	if err := json.Unmarshal(raw, &out); err != nil {
		return Output{}, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	return out, nil
}
