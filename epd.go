// epd.go implements Extended Position Description parsing/serialization.
// chego has no EPD support at all; this is grounded in original_source's
// src/tags.rs, whose Tags variants (bm, pv, acd, ce, sm, Sq, Dn, cn, id)
// this spec's EPD operation table is visibly modeled on.
package chesscore

import (
	"strconv"
	"strings"
)

// EPD is a parsed Extended Position Description record: a Board plus an
// ordered set of opcode operations.
type EPD struct {
	Board Board
	Ops   map[string]string
	order []string
}

// Set records an operation, preserving first-insertion order for
// round-trip serialization.
func (e *EPD) Set(opcode, value string) {
	if e.Ops == nil {
		e.Ops = make(map[string]string)
	}
	if _, exists := e.Ops[opcode]; !exists {
		e.order = append(e.order, opcode)
	}
	e.Ops[opcode] = value
}

// BestMoves parses a "bm" operation's space-separated SAN move list.
func (e *EPD) BestMoves() []string {
	v, ok := e.Ops["bm"]
	if !ok {
		return nil
	}
	return strings.Fields(v)
}

// PerftDepth returns the expected node count stored in the "Dn" operation
// for the given depth (e.g. depth 5 reads "D5 97862" as 97862), and false if
// that operation is absent or its operand is not an unsigned integer.
func (e *EPD) PerftDepth(depth int) (uint64, bool) {
	v, ok := e.Ops["D"+strconv.Itoa(depth)]
	if !ok {
		return 0, false
	}
	n, err := strconv.ParseUint(strings.TrimSpace(v), 10, 64)
	return n, err == nil
}

// ParseEPD parses a single-line EPD record: four FEN-like fields (piece
// placement, active color, castling rights, en passant target — EPD omits
// the halfmove/fullmove counters FEN carries) followed by semicolon-
// terminated "opcode operand" pairs.
func ParseEPD(line string) (EPD, error) {
	line = strings.TrimSpace(line)
	fields := strings.Fields(line)
	if len(fields) < 4 {
		return EPD{}, newParseError("epd", line, "expected at least 4 position fields")
	}

	fen := strings.Join(fields[:4], " ") + " 0 1"
	board, err := ParseFEN(fen)
	if err != nil {
		return EPD{}, newParseError("epd", line, "invalid position: "+err.Error())
	}

	epd := EPD{Board: board}
	rest := strings.TrimSpace(strings.Join(fields[4:], " "))
	for _, raw := range strings.Split(rest, ";") {
		op := strings.TrimSpace(raw)
		if op == "" {
			continue
		}
		parts := strings.SplitN(op, " ", 2)
		opcode := parts[0]
		value := ""
		if len(parts) == 2 {
			value = strings.Trim(parts[1], "\"")
		}
		epd.Set(opcode, value)
	}

	return epd, nil
}

// String serializes the EPD back to its single-line text form.
func (e *EPD) String() string {
	fen := e.Board.FEN()
	fields := strings.Fields(fen)
	var out strings.Builder
	out.WriteString(strings.Join(fields[:4], " "))

	for _, opcode := range e.order {
		out.WriteByte(' ')
		out.WriteString(opcode)
		if v := e.Ops[opcode]; v != "" {
			out.WriteByte(' ')
			out.WriteString(v)
		}
		out.WriteByte(';')
	}
	return out.String()
}
