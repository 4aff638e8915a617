package contract

import (
	"bytes"
	"encoding/binary"
	"errors"

	"snapgov/sdk"
)

// Deterministic binary codec for stored records. Big-endian fixed ints for
// ids and amounts, varints for counts, length-prefixed strings. Encodings of
// equal values are byte-identical, which the intent digest relies on.

type binWriter struct {
	buf bytes.Buffer
}

// newWriter spins up a fresh writer so we dont leak old bytes between encodes.
func newWriter() *binWriter { return &binWriter{} }

func (w *binWriter) bytes() []byte { return w.buf.Bytes() }

// writeBool squashes bools into a single byte flag for deterministic payloads.
func (w *binWriter) writeBool(v bool) {
	if v {
		w.buf.WriteByte(1)
	} else {
		w.buf.WriteByte(0)
	}
}

// writeUint64 writes big endian numbers so tooling can read them without guessing.
func (w *binWriter) writeUint64(v uint64) {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], v)
	w.buf.Write(b[:])
}

// writeInt64 reuses the uint routine since casting keeps the sign bits intact.
func (w *binWriter) writeInt64(v int64) {
	w.writeUint64(uint64(v))
}

// writeVarUint uses varints to keep counts and lens compact.
func (w *binWriter) writeVarUint(v uint64) {
	var tmp [binary.MaxVarintLen64]byte
	n := binary.PutUvarint(tmp[:], v)
	w.buf.Write(tmp[:n])
}

// writeAmount keeps amount handling consistent via a single call site.
func (w *binWriter) writeAmount(v Amount) {
	w.writeInt64(int64(v))
}

// writeString prefixes its length then dumps UTF-8 directly.
func (w *binWriter) writeString(s string) {
	w.writeVarUint(uint64(len(s)))
	w.buf.WriteString(s)
}

func (w *binWriter) writeAddress(a sdk.Address) {
	w.writeString(AddressToString(a))
}

func (w *binWriter) writeAsset(a sdk.Asset) {
	w.writeString(AssetToString(a))
}

type binReader struct {
	data []byte
	pos  int
}

// newReader wraps raw bytes so we can peek sequentially w/out copying.
func newReader(data []byte) *binReader {
	return &binReader{data: data}
}

func (r *binReader) readByte() (byte, error) {
	if r.pos >= len(r.data) {
		return 0, errors.New("unexpected EOF")
	}
	b := r.data[r.pos]
	r.pos++
	return b, nil
}

func (r *binReader) readBool() (bool, error) {
	b, err := r.readByte()
	if err != nil {
		return false, err
	}
	return b == 1, nil
}

func (r *binReader) readUint64() (uint64, error) {
	if r.pos+8 > len(r.data) {
		return 0, errors.New("unexpected EOF")
	}
	val := binary.BigEndian.Uint64(r.data[r.pos : r.pos+8])
	r.pos += 8
	return val, nil
}

func (r *binReader) readInt64() (int64, error) {
	v, err := r.readUint64()
	if err != nil {
		return 0, err
	}
	return int64(v), nil
}

func (r *binReader) readVarUint() (uint64, error) {
	val, n := binary.Uvarint(r.data[r.pos:])
	if n <= 0 {
		return 0, errors.New("invalid varuint")
	}
	r.pos += n
	return val, nil
}

func (r *binReader) readAmount() (Amount, error) {
	val, err := r.readInt64()
	if err != nil {
		return 0, err
	}
	return Amount(val), nil
}

func (r *binReader) readString() (string, error) {
	n, err := r.readVarUint()
	if err != nil {
		return "", err
	}
	if r.pos+int(n) > len(r.data) {
		return "", errors.New("unexpected EOF")
	}
	s := string(r.data[r.pos : r.pos+int(n)])
	r.pos += int(n)
	return s, nil
}

func (r *binReader) readAddress() (sdk.Address, error) {
	s, err := r.readString()
	if err != nil {
		return sdk.Address(""), err
	}
	return AddressFromString(s), nil
}

func (r *binReader) readAsset() (sdk.Asset, error) {
	s, err := r.readString()
	if err != nil {
		return sdk.Asset(""), err
	}
	return AssetFromString(s), nil
}

// ------------------------------------------------------------------
// Record encoders/decoders
// ------------------------------------------------------------------

// EncodeConfig serializes the engine configuration into deterministic bytes.
// Example payload: EncodeConfig(&Config{QuorumBps: 5000})
func EncodeConfig(cfg *Config) []byte {
	w := newWriter()
	w.writeAddress(cfg.Owner)
	w.writeUint64(cfg.Epoch)
	w.writeUint64(cfg.QuorumBps)
	w.writeAmount(cfg.QuorumAbs)
	w.writeAmount(cfg.YesFloor)
	w.writeInt64(cfg.TTLSecs)
	w.writeInt64(cfg.TimelockSecs)
	w.writeBool(cfg.RageQuitEnabled)
	w.writeBool(cfg.TransferLocked)
	w.writeBool(cfg.SaleOpen)
	w.writeAmount(cfg.SalePrice)
	w.writeAsset(cfg.SaleAsset)
	w.writeBool(cfg.PermitMirror)
	return w.bytes()
}

func DecodeConfig(data []byte) (*Config, error) {
	r := newReader(data)
	cfg := &Config{}
	var err error
	if cfg.Owner, err = r.readAddress(); err != nil {
		return nil, err
	}
	if cfg.Epoch, err = r.readUint64(); err != nil {
		return nil, err
	}
	if cfg.QuorumBps, err = r.readUint64(); err != nil {
		return nil, err
	}
	if cfg.QuorumAbs, err = r.readAmount(); err != nil {
		return nil, err
	}
	if cfg.YesFloor, err = r.readAmount(); err != nil {
		return nil, err
	}
	if cfg.TTLSecs, err = r.readInt64(); err != nil {
		return nil, err
	}
	if cfg.TimelockSecs, err = r.readInt64(); err != nil {
		return nil, err
	}
	if cfg.RageQuitEnabled, err = r.readBool(); err != nil {
		return nil, err
	}
	if cfg.TransferLocked, err = r.readBool(); err != nil {
		return nil, err
	}
	if cfg.SaleOpen, err = r.readBool(); err != nil {
		return nil, err
	}
	if cfg.SalePrice, err = r.readAmount(); err != nil {
		return nil, err
	}
	if cfg.SaleAsset, err = r.readAsset(); err != nil {
		return nil, err
	}
	if cfg.PermitMirror, err = r.readBool(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// EncodeCheckpoints packs a checkpoint sequence; heights are strictly
// increasing so deltas would compress better, but fixed width keeps the
// binary-search slice math trivial on decode.
func EncodeCheckpoints(cps []Checkpoint) []byte {
	w := newWriter()
	w.writeVarUint(uint64(len(cps)))
	for _, cp := range cps {
		w.writeUint64(cp.Height)
		w.writeAmount(cp.Power)
	}
	return w.bytes()
}

func DecodeCheckpoints(data []byte) ([]Checkpoint, error) {
	r := newReader(data)
	n, err := r.readVarUint()
	if err != nil {
		return nil, err
	}
	cps := make([]Checkpoint, 0, n)
	for i := uint64(0); i < n; i++ {
		var cp Checkpoint
		if cp.Height, err = r.readUint64(); err != nil {
			return nil, err
		}
		if cp.Power, err = r.readAmount(); err != nil {
			return nil, err
		}
		cps = append(cps, cp)
	}
	return cps, nil
}

// EncodeDelegation stores the routing record; an empty split slice means the
// single-target path.
func EncodeDelegation(d *Delegation) []byte {
	w := newWriter()
	w.writeAddress(d.Delegate)
	w.writeVarUint(uint64(len(d.Split)))
	for _, e := range d.Split {
		w.writeAddress(e.Delegate)
		w.writeUint64(e.WeightBps)
	}
	return w.bytes()
}

func DecodeDelegation(data []byte) (*Delegation, error) {
	r := newReader(data)
	d := &Delegation{}
	var err error
	if d.Delegate, err = r.readAddress(); err != nil {
		return nil, err
	}
	n, err := r.readVarUint()
	if err != nil {
		return nil, err
	}
	for i := uint64(0); i < n; i++ {
		var e SplitEntry
		if e.Delegate, err = r.readAddress(); err != nil {
			return nil, err
		}
		if e.WeightBps, err = r.readUint64(); err != nil {
			return nil, err
		}
		d.Split = append(d.Split, e)
	}
	return d, nil
}

// EncodeProposal turns a Proposal into bytes so we can persist tallies without json overhead.
// Example payload: EncodeProposal(&Proposal{SnapshotHeight: 41})
func EncodeProposal(p *Proposal) []byte {
	w := newWriter()
	w.writeUint64(p.SnapshotHeight)
	w.writeAmount(p.SnapshotSupply)
	w.writeInt64(p.CreatedAt)
	w.writeInt64(p.QueuedAt)
	w.writeAmount(p.ForVotes)
	w.writeAmount(p.AgainstVotes)
	w.writeAmount(p.AbstainVotes)
	return w.bytes()
}

func DecodeProposal(data []byte) (*Proposal, error) {
	r := newReader(data)
	p := &Proposal{}
	var err error
	if p.SnapshotHeight, err = r.readUint64(); err != nil {
		return nil, err
	}
	if p.SnapshotSupply, err = r.readAmount(); err != nil {
		return nil, err
	}
	if p.CreatedAt, err = r.readInt64(); err != nil {
		return nil, err
	}
	if p.QueuedAt, err = r.readInt64(); err != nil {
		return nil, err
	}
	if p.ForVotes, err = r.readAmount(); err != nil {
		return nil, err
	}
	if p.AgainstVotes, err = r.readAmount(); err != nil {
		return nil, err
	}
	if p.AbstainVotes, err = r.readAmount(); err != nil {
		return nil, err
	}
	return p, nil
}

// EncodeFutarchy serializes a conditional market record.
func EncodeFutarchy(f *Futarchy) []byte {
	w := newWriter()
	w.writeBool(f.Enabled)
	w.writeAsset(f.Asset)
	w.writeAmount(f.Pool)
	w.writeBool(f.Resolved)
	w.buf.WriteByte(byte(f.Winning))
	w.writeAmount(f.WinningSupply)
	w.writeAmount(f.PayoutPerUnit)
	return w.bytes()
}

func DecodeFutarchy(data []byte) (*Futarchy, error) {
	r := newReader(data)
	f := &Futarchy{}
	var err error
	if f.Enabled, err = r.readBool(); err != nil {
		return nil, err
	}
	if f.Asset, err = r.readAsset(); err != nil {
		return nil, err
	}
	if f.Pool, err = r.readAmount(); err != nil {
		return nil, err
	}
	if f.Resolved, err = r.readBool(); err != nil {
		return nil, err
	}
	b, err := r.readByte()
	if err != nil {
		return nil, err
	}
	f.Winning = Stance(b)
	if f.WinningSupply, err = r.readAmount(); err != nil {
		return nil, err
	}
	if f.PayoutPerUnit, err = r.readAmount(); err != nil {
		return nil, err
	}
	return f, nil
}

// EncodeMemberSlots packs the fixed slot array; empty slots encode as "".
func EncodeMemberSlots(slots *[MemberSlots]sdk.Address) []byte {
	w := newWriter()
	for _, a := range slots {
		w.writeAddress(a)
	}
	return w.bytes()
}

func DecodeMemberSlots(data []byte) (*[MemberSlots]sdk.Address, error) {
	r := newReader(data)
	var slots [MemberSlots]sdk.Address
	for i := 0; i < MemberSlots; i++ {
		a, err := r.readAddress()
		if err != nil {
			return nil, err
		}
		slots[i] = a
	}
	return &slots, nil
}
