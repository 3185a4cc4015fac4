package main

import (
	"context"
	"encoding/json"
	"flag"
	"log"
	"math/rand"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/segmentio/kafka-go"
)

type RequestedItem struct {
	SkuID string `json:"sku_id"`
	Qty   int    `json:"qty"`
}

type CreateOrderRequest struct {
	UserID          string          `json:"user_id"`
	AddressID       string          `json:"address_id"`
	Items           []RequestedItem `json:"items"`
	PreferredSlotID string          `json:"preferred_slot_id,omitempty"`
}

func generateRandomRequest(users, skus, slots []string) CreateOrderRequest {
	items := make([]RequestedItem, 0, 3)
	for n := 1 + rand.Intn(3); n > 0; n-- {
		items = append(items, RequestedItem{
			SkuID: skus[rand.Intn(len(skus))],
			Qty:   1 + rand.Intn(5),
		})
	}

	req := CreateOrderRequest{
		UserID:    users[rand.Intn(len(users))],
		AddressID: "33333333-3333-3333-3333-333333333333",
		Items:     items,
	}
	// часть заказов без предпочтений - слот назначит сервис
	if rand.Intn(3) > 0 {
		req.PreferredSlotID = slots[rand.Intn(len(slots))]
	}
	return req
}

func main() {
	brokers := flag.String("brokers", "localhost:9092", "kafka brokers")
	topic := flag.String("topic", "orders", "topic to produce to")
	usersFile := flag.String("users", "", "comma-separated user ids (defaults to sample ids)")
	flag.Parse()

	// идентификаторы из сидовых данных дев-стенда
	users := []string{
		"11111111-1111-1111-1111-111111111111",
		"22222222-2222-2222-2222-222222222222",
	}
	skus := []string{"SKU-MILK", "SKU-BREAD", "SKU-EGGS", "SKU-COFFEE"}
	slots := []string{
		"aaaaaaaa-aaaa-aaaa-aaaa-aaaaaaaaaaaa",
		"bbbbbbbb-bbbb-bbbb-bbbb-bbbbbbbbbbbb",
	}
	if *usersFile != "" {
		users = strings.Split(*usersFile, ",")
	}

	writer := &kafka.Writer{
		Addr:  kafka.TCP(*brokers),
		Topic: *topic,
	}
	defer writer.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	ticker := time.NewTicker(2 * time.Second)
	for {
		select {
		case <-ticker.C:
			req := generateRandomRequest(users, skus, slots)
			data, _ := json.Marshal(req)
			if err := writer.WriteMessages(context.Background(), kafka.Message{
				Key:   []byte(req.UserID),
				Value: data,
			}); err != nil {
				log.Println("failed to produce order", err)
				continue
			}
			log.Println("order produced for user", req.UserID)
		case <-ctx.Done():
			return
		}
	}
}
