package order_events

import (
	"github.com/IBM/sarama"
)

// producer подмножество sarama.SyncProducer. В тестах подставляется sarama/mocks.
type producer interface {
	SendMessage(msg *sarama.ProducerMessage) (partition int32, offset int64, err error)
}
