package main

import (
	"context"
	"log"
	"net"
	"os"
	"strconv"
	"strings"
	"time"

	"google.golang.org/grpc"

	"chronos/api/grpcserver"
	pb "chronos/api/pb"
	"chronos/domain/scan"
	"chronos/engine"
	"chronos/infra/kafka"
	"chronos/infra/outbox"
	"chronos/infra/sequence"
	"chronos/infra/wal"
	"chronos/jobs/broadcaster"
	"chronos/service"
	"chronos/snapshot"
)

func main() {
	walDir := envOr("CHRONOS_WAL_DIR", "./data/wal")
	outboxDir := envOr("CHRONOS_OUTBOX_DIR", "./data/outbox")
	snapshotDir := envOr("CHRONOS_SNAPSHOT_DIR", "./data/snapshots")
	grpcAddr := envOr("CHRONOS_GRPC_ADDR", ":50051")
	brokers := splitNonEmpty(os.Getenv("CHRONOS_KAFKA_BROKERS"))
	execTopic := envOr("CHRONOS_EXEC_TOPIC", "chronos.executions")
	depthTopic := envOr("CHRONOS_DEPTH_TOPIC", "chronos.depth")
	instruments := parseInstruments(envOr("CHRONOS_INSTRUMENTS", "1,2,3,4,5,6,7,8,9,10"))

	// ---------------- Engine ----------------

	metrics := &engine.CounterMetrics{}
	eng := engine.New(instruments, scan.New(), metrics)

	// ---------------- Recovery ----------------

	restoredSeq := uint64(0)
	restoredMsgCount := uint64(0)
	if path, seq, ok, err := snapshot.LatestPath(snapshotDir); err != nil {
		log.Fatalf("snapshot scan failed: %v", err)
	} else if ok {
		f, err := os.Open(path)
		if err != nil {
			log.Fatalf("snapshot open failed: %v", err)
		}
		msgCount, err := eng.RestoreSnapshot(f)
		f.Close()
		if err != nil {
			log.Fatalf("snapshot restore failed: %v", err)
		}
		restoredSeq = seq
		restoredMsgCount = msgCount
		log.Printf("restored snapshot seq=%d messages=%d", seq, msgCount)
	}

	seqGen := sequence.New(0)
	applied, err := service.Recover(eng, seqGen, walDir, restoredSeq)
	if err != nil {
		log.Fatalf("WAL replay failed: %v", err)
	}
	log.Printf("replayed %d commands, resuming at seq %d", applied, seqGen.Current())

	// ---------------- Command log ----------------

	commandLog, err := wal.Open(wal.Config{
		Dir:             walDir,
		SegmentSize:     64 * 1024 * 1024,
		SegmentDuration: time.Hour,
	})
	if err != nil {
		log.Fatalf("command log init failed: %v", err)
	}
	defer commandLog.Close()

	// ---------------- Egress ----------------

	box, err := outbox.Open(outboxDir)
	if err != nil {
		log.Fatalf("outbox init failed: %v", err)
	}
	defer box.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var depth *kafka.Producer
	if len(brokers) > 0 {
		depth = kafka.NewProducer(brokers, depthTopic)
		defer depth.Close()

		bc, err := broadcaster.New(box, brokers, execTopic, 250*time.Millisecond)
		if err != nil {
			log.Fatalf("broadcaster init failed: %v", err)
		}
		defer bc.Close()
		bc.Start(ctx)
	} else {
		log.Println("no Kafka brokers configured, egress disabled")
	}

	// ---------------- Service ----------------

	svc := service.New(eng, seqGen, commandLog, box, depth, metrics)
	svc.SetMessageCount(restoredMsgCount + applied)
	svc.StartSnapshotJob(ctx, snapshotDir, time.Minute)

	// ---------------- gRPC ----------------

	lis, err := net.Listen("tcp", grpcAddr)
	if err != nil {
		log.Fatalf("listen failed: %v", err)
	}

	grpcSrv := grpc.NewServer()
	pb.RegisterOrderServiceServer(grpcSrv, grpcserver.NewServer(svc))

	log.Printf("CHRONOS engine serving %d instruments on %s", len(instruments), grpcAddr)

	if err := grpcSrv.Serve(lis); err != nil {
		log.Fatalf("gRPC server exited: %v", err)
	}
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func splitNonEmpty(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func parseInstruments(s string) []uint32 {
	var out []uint32
	for _, part := range splitNonEmpty(s) {
		id, err := strconv.ParseUint(part, 10, 32)
		if err != nil || id == 0 {
			log.Fatalf("bad instrument id %q", part)
		}
		out = append(out, uint32(id))
	}
	if len(out) == 0 {
		log.Fatal("no instruments configured")
	}
	return out
}
