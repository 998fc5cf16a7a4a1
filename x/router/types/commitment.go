package types

import (
	"crypto/sha256"
	"encoding/binary"
)

// CommitmentSize is the byte length of every stored commitment value.
const CommitmentSize = sha256.Size

// CommitPacket returns the 32-byte commitment hash of a packet. The encoding
// is a cross-chain wire contract: every variable-length field is prefixed
// with its big-endian uint64 length so the hash is injective, and payload
// values are pre-hashed so commitments stay constant-size regardless of
// application data.
//
// The sequence and source client are not part of the hash; they are bound by
// the store key the commitment lives under.
func CommitPacket(packet Packet) []byte {
	buf := make([]byte, 0, 128)
	buf = appendUint64(buf, packet.TimeoutTimestamp)
	buf = appendBytes(buf, []byte(packet.DestinationClient))

	payloadHashes := make([]byte, 0, len(packet.Payloads)*CommitmentSize)
	for _, payload := range packet.Payloads {
		h := hashPayload(payload)
		payloadHashes = append(payloadHashes, h[:]...)
	}
	payloadsHash := sha256.Sum256(payloadHashes)
	buf = append(buf, payloadsHash[:]...)

	hash := sha256.Sum256(buf)
	return hash[:]
}

// CommitAcknowledgement returns the 32-byte commitment hash of an
// acknowledgement: the hash of the concatenated per-payload ack hashes.
func CommitAcknowledgement(ack Acknowledgement) []byte {
	buf := make([]byte, 0, len(ack.AppAcknowledgements)*CommitmentSize)
	for _, appAck := range ack.AppAcknowledgements {
		h := sha256.Sum256(appAck)
		buf = append(buf, h[:]...)
	}
	hash := sha256.Sum256(buf)
	return hash[:]
}

func hashPayload(payload Payload) [CommitmentSize]byte {
	buf := make([]byte, 0, 128)
	buf = appendBytes(buf, []byte(payload.SourcePort))
	buf = appendBytes(buf, []byte(payload.DestinationPort))
	buf = appendBytes(buf, []byte(payload.Version))
	buf = appendBytes(buf, []byte(payload.Encoding))
	valueHash := sha256.Sum256(payload.Value)
	buf = append(buf, valueHash[:]...)
	return sha256.Sum256(buf)
}

func appendUint64(buf []byte, v uint64) []byte {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], v)
	return append(buf, b[:]...)
}

func appendBytes(buf, b []byte) []byte {
	buf = appendUint64(buf, uint64(len(b)))
	return append(buf, b...)
}
