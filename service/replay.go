package service

import (
	"fmt"

	"chronos/domain/lob"
	"chronos/engine"
	"chronos/infra/sequence"
	"chronos/infra/wal"
	"chronos/sbe"
)

/*
Recover rebuilds in-memory state before the service accepts traffic. The
caller restores the newest snapshot (if any) into eng first and passes its
sequence as restoredSeq; Recover then:

 1. replays every command-log record after restoredSeq
 2. resumes the sequencer from the last replayed sequence
 3. checks every book's structural invariants

Replayed commands run through the exact same engine entry points with their
recorded timestamps, so the rebuilt state (execution ids included) is
identical to the pre-restart state. Reports produced during replay were
already fanned out in the previous life and are discarded here.
*/
func Recover(eng *engine.Engine, seqGen *sequence.Sequencer, walDir string,
	restoredSeq uint64) (messageCount uint64, err error) {

	out := make([]byte, outputBufferSize)
	var headerDec sbe.MessageHeaderDecoder
	var orderDec sbe.NewOrderSingleDecoder
	var cancelDec sbe.CancelOrderDecoder

	applied := uint64(0)
	lastSeq, err := wal.Replay(walDir, func(rec *wal.Record) error {
		if rec.Seq <= restoredSeq {
			return nil // already covered by the snapshot
		}
		if len(rec.Payload) < sbe.HeaderLength {
			return fmt.Errorf("wal record %d: payload too short", rec.Seq)
		}

		headerDec.Wrap(rec.Payload, 0)
		switch headerDec.TemplateID() {
		case sbe.NewOrderSingleTemplateID:
			orderDec.Wrap(rec.Payload, sbe.HeaderLength)
			eng.MatchOrder(&orderDec, rec.TimestampNs, out, 0)
		case sbe.CancelOrderTemplateID:
			cancelDec.Wrap(rec.Payload, sbe.HeaderLength)
			eng.CancelOrder(&cancelDec, rec.TimestampNs, out, 0)
		default:
			// Unknown templates were logged and ignored at admission; they
			// still count as applied messages, as they did in the live run.
		}
		applied++
		return nil
	})
	if err != nil {
		return applied, err
	}

	if lastSeq > restoredSeq {
		seqGen.Reset(lastSeq)
	} else {
		seqGen.Reset(restoredSeq)
	}

	// A replayed book must satisfy every structural invariant before the
	// service goes live.
	var invariantErr error
	eng.EachBook(func(b *lob.OrderBook) {
		if invariantErr == nil {
			invariantErr = b.CheckInvariants()
		}
	})
	return applied, invariantErr
}
