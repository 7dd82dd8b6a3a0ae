package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/nats-io/nats.go"
	"go.uber.org/zap"

	"github.com/sebastien-blain/SOEN390-team-9/internal/models"
	"github.com/sebastien-blain/SOEN390-team-9/internal/repository"
)

type NATSSubscriber struct {
	natsConn       *nats.Conn
	clickhouseRepo *repository.ClickhouseRepository
	log            *zap.Logger
}

func NewNATSSubscriber(natsConn *nats.Conn, clickhouseRepo *repository.ClickhouseRepository, log *zap.Logger) *NATSSubscriber {
	return &NATSSubscriber{
		natsConn:       natsConn,
		clickhouseRepo: clickhouseRepo,
		log:            log,
	}
}

// Subscribe wires the good.* subjects into the ClickHouse event log.
func (s *NATSSubscriber) Subscribe() error {
	_, err := s.natsConn.Subscribe("good.*", func(msg *nats.Msg) {
		var event models.GoodEvent
		if err := json.Unmarshal(msg.Data, &event); err != nil {
			s.log.Error("failed to unmarshal NATS message",
				zap.String("subject", msg.Subject), zap.Error(err))
			return
		}

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := s.clickhouseRepo.LogGoodEvent(ctx, &event); err != nil {
			s.log.Error("failed to log event to ClickHouse",
				zap.String("subject", msg.Subject), zap.Int("good_id", event.ID), zap.Error(err))
			return
		}

		s.log.Info("logged good event",
			zap.String("subject", msg.Subject), zap.Int("good_id", event.ID))
	})

	if err != nil {
		return err
	}

	s.log.Info("subscribed to NATS topics", zap.String("subjects", "good.*"))

	return nil
}
