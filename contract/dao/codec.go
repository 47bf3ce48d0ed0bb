package dao

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
)

var errUnexpectedEOF = errors.New("unexpected EOF")

type binWriter struct {
	buf bytes.Buffer
}

func newWriter() *binWriter { return &binWriter{} }

func (w *binWriter) bytes() []byte { return w.buf.Bytes() }

func (w *binWriter) writeBool(v bool) {
	if v {
		w.buf.WriteByte(1)
	} else {
		w.buf.WriteByte(0)
	}
}

func (w *binWriter) writeUint64(v uint64) {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], v)
	w.buf.Write(b[:])
}

func (w *binWriter) writeVarUint(v uint64) {
	var tmp [binary.MaxVarintLen64]byte
	n := binary.PutUvarint(tmp[:], v)
	w.buf.Write(tmp[:n])
}

func (w *binWriter) writeString(s string) {
	w.writeVarUint(uint64(len(s)))
	w.buf.WriteString(s)
}

func (w *binWriter) writeAddress(a Address) {
	w.writeString(a.String())
}

// ------------------------------------------------------------------
// Decoder helpers
// ------------------------------------------------------------------

type binReader struct {
	data []byte
	pos  int
}

func newReader(data []byte) *binReader {
	return &binReader{data: data}
}

func (r *binReader) readByte() (byte, error) {
	if r.pos >= len(r.data) {
		return 0, errUnexpectedEOF
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
		return 0, errUnexpectedEOF
	}
	val := binary.BigEndian.Uint64(r.data[r.pos : r.pos+8])
	r.pos += 8
	return val, nil
}

func (r *binReader) readVarUint() (uint64, error) {
	val, n := binary.Uvarint(r.data[r.pos:])
	if n <= 0 {
		return 0, errors.New("invalid varuint")
	}
	r.pos += n
	return val, nil
}

func (r *binReader) readString() (string, error) {
	l, err := r.readVarUint()
	if err != nil {
		return "", err
	}
	if l > uint64(len(r.data)-r.pos) {
		return "", errUnexpectedEOF
	}
	s := string(r.data[r.pos : r.pos+int(l)])
	r.pos += int(l)
	return s, nil
}

func (r *binReader) readAddress() (Address, error) {
	s, err := r.readString()
	return Address(s), err
}

// done rejects trailing bytes so a record never decodes from a foreign layout.
func (r *binReader) done(kind string) error {
	if r.pos != len(r.data) {
		return fmt.Errorf("decode %s: %d trailing bytes", kind, len(r.data)-r.pos)
	}
	return nil
}

// ------------------------------------------------------------------
// Records
// ------------------------------------------------------------------

func EncodeDAO(d *DAO) []byte {
	w := newWriter()
	w.writeUint64(d.ID)
	w.writeString(d.Name)
	w.writeString(d.Description)
	w.writeAddress(d.Creator)
	w.writeUint64(d.CreatedAt)
	w.writeAddress(d.GovernanceToken)
	w.writeUint64(d.MembershipThreshold)
	w.writeBool(d.Active)
	return w.bytes()
}

func DecodeDAO(data []byte) (*DAO, error) {
	r := newReader(data)
	d := &DAO{}
	var err error
	if d.ID, err = r.readUint64(); err != nil {
		return nil, err
	}
	if d.Name, err = r.readString(); err != nil {
		return nil, err
	}
	if d.Description, err = r.readString(); err != nil {
		return nil, err
	}
	if d.Creator, err = r.readAddress(); err != nil {
		return nil, err
	}
	if d.CreatedAt, err = r.readUint64(); err != nil {
		return nil, err
	}
	if d.GovernanceToken, err = r.readAddress(); err != nil {
		return nil, err
	}
	if d.MembershipThreshold, err = r.readUint64(); err != nil {
		return nil, err
	}
	if d.Active, err = r.readBool(); err != nil {
		return nil, err
	}
	return d, r.done("dao")
}

// EncodeSettings packs the four parameters as varints, settings are tiny.
func EncodeSettings(s *Settings) []byte {
	w := newWriter()
	w.writeVarUint(s.VotingPeriod)
	w.writeVarUint(s.QuorumBps)
	w.writeVarUint(s.MajorityBps)
	w.writeVarUint(s.ProposalThreshold)
	return w.bytes()
}

func DecodeSettings(data []byte) (*Settings, error) {
	r := newReader(data)
	s := &Settings{}
	var err error
	if s.VotingPeriod, err = r.readVarUint(); err != nil {
		return nil, err
	}
	if s.QuorumBps, err = r.readVarUint(); err != nil {
		return nil, err
	}
	if s.MajorityBps, err = r.readVarUint(); err != nil {
		return nil, err
	}
	if s.ProposalThreshold, err = r.readVarUint(); err != nil {
		return nil, err
	}
	return s, r.done("settings")
}

func EncodeMember(m *Member) []byte {
	w := newWriter()
	w.writeAddress(m.Address)
	w.writeUint64(m.JoinedAt)
	w.writeBool(m.Active)
	w.writeBool(m.Admin)
	w.writeUint64(m.VotingPower)
	return w.bytes()
}

func DecodeMember(data []byte) (*Member, error) {
	r := newReader(data)
	m := &Member{}
	var err error
	if m.Address, err = r.readAddress(); err != nil {
		return nil, err
	}
	if m.JoinedAt, err = r.readUint64(); err != nil {
		return nil, err
	}
	if m.Active, err = r.readBool(); err != nil {
		return nil, err
	}
	if m.Admin, err = r.readBool(); err != nil {
		return nil, err
	}
	if m.VotingPower, err = r.readUint64(); err != nil {
		return nil, err
	}
	return m, r.done("member")
}

func EncodeProposal(p *Proposal) []byte {
	w := newWriter()
	w.writeUint64(p.DAOID)
	w.writeUint64(p.ID)
	w.writeString(p.Title)
	w.writeString(p.Description)
	w.writeAddress(p.Proposer)
	w.writeUint64(p.CreatedAt)
	w.writeUint64(p.VotingEndsAt)
	w.buf.WriteByte(byte(p.Status))
	w.writeUint64(p.VotesFor)
	w.writeUint64(p.VotesAgainst)
	w.writeUint64(p.TotalVotes)
	return w.bytes()
}

func DecodeProposal(data []byte) (*Proposal, error) {
	r := newReader(data)
	p := &Proposal{}
	var err error
	if p.DAOID, err = r.readUint64(); err != nil {
		return nil, err
	}
	if p.ID, err = r.readUint64(); err != nil {
		return nil, err
	}
	if p.Title, err = r.readString(); err != nil {
		return nil, err
	}
	if p.Description, err = r.readString(); err != nil {
		return nil, err
	}
	if p.Proposer, err = r.readAddress(); err != nil {
		return nil, err
	}
	if p.CreatedAt, err = r.readUint64(); err != nil {
		return nil, err
	}
	if p.VotingEndsAt, err = r.readUint64(); err != nil {
		return nil, err
	}
	status, err := r.readByte()
	if err != nil {
		return nil, err
	}
	p.Status = ProposalStatus(status)
	if p.VotesFor, err = r.readUint64(); err != nil {
		return nil, err
	}
	if p.VotesAgainst, err = r.readUint64(); err != nil {
		return nil, err
	}
	if p.TotalVotes, err = r.readUint64(); err != nil {
		return nil, err
	}
	return p, r.done("proposal")
}

func EncodeVote(v *Vote) []byte {
	w := newWriter()
	w.writeUint64(v.DAOID)
	w.writeUint64(v.ProposalID)
	w.writeAddress(v.Voter)
	w.writeBool(v.Support)
	w.writeUint64(v.VotingPower)
	w.writeUint64(v.CastAt)
	return w.bytes()
}

func DecodeVote(data []byte) (*Vote, error) {
	r := newReader(data)
	v := &Vote{}
	var err error
	if v.DAOID, err = r.readUint64(); err != nil {
		return nil, err
	}
	if v.ProposalID, err = r.readUint64(); err != nil {
		return nil, err
	}
	if v.Voter, err = r.readAddress(); err != nil {
		return nil, err
	}
	if v.Support, err = r.readBool(); err != nil {
		return nil, err
	}
	if v.VotingPower, err = r.readUint64(); err != nil {
		return nil, err
	}
	if v.CastAt, err = r.readUint64(); err != nil {
		return nil, err
	}
	return v, r.done("vote")
}

func EncodeTreasury(t *Treasury) []byte {
	w := newWriter()
	w.writeUint64(t.DAOID)
	w.writeUint64(t.Balance)
	w.writeUint64(t.LastUpdated)
	return w.bytes()
}

func DecodeTreasury(data []byte) (*Treasury, error) {
	r := newReader(data)
	t := &Treasury{}
	var err error
	if t.DAOID, err = r.readUint64(); err != nil {
		return nil, err
	}
	if t.Balance, err = r.readUint64(); err != nil {
		return nil, err
	}
	if t.LastUpdated, err = r.readUint64(); err != nil {
		return nil, err
	}
	return t, r.done("treasury")
}
