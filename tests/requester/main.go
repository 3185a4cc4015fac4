package main

import (
	"bytes"
	"fmt"
	"math/rand"
	"net/http"
	"sync"
	"time"
)

const (
	createURL = "http://localhost:9000/orders"
	getURL    = "http://localhost:9000/orders/"
	fixedID   = "9c1f6f6e-6b3a-4f6e-b9a2-0e5a6d1c2b3a"
)

var slots = []string{
	"aaaaaaaa-aaaa-aaaa-aaaa-aaaaaaaaaaaa",
	"bbbbbbbb-bbbb-bbbb-bbbb-bbbbbbbbbbbb",
}

func main() {
	for {
		var wg sync.WaitGroup
		for range rand.Intn(10) {
			if rand.Intn(3) == 0 {
				wg.Go(doCreate)
			} else {
				wg.Go(doGet)
			}
		}
		wg.Wait()
		time.Sleep(20 * time.Millisecond)
	}
}

func randomID(length int) string {
	chars := []rune("abcdefghijklmnopqrstuvwxyz0123456789")
	id := make([]rune, length)
	for i := range id {
		id[i] = chars[rand.Intn(len(chars))]
	}
	return string(id)
}

func doGet() {
	id := fixedID
	if rand.Intn(5) == 0 {
		id = randomID(12)
	}

	url := getURL + id
	resp, err := http.Get(url)
	if err != nil {
		fmt.Println("Ошибка запроса:", err)
	} else {
		fmt.Println("GET", url, "->", resp.Status)
		resp.Body.Close()
	}
}

func doCreate() {
	body := fmt.Sprintf(`{
		"user_id": "11111111-1111-1111-1111-111111111111",
		"address_id": "33333333-3333-3333-3333-333333333333",
		"items": [{"sku_id": "SKU-MILK", "qty": %d}],
		"preferred_slot_id": "%s"
	}`, 1+rand.Intn(3), slots[rand.Intn(len(slots))])

	resp, err := http.Post(createURL, "application/json", bytes.NewBufferString(body))
	if err != nil {
		fmt.Println("Ошибка запроса:", err)
	} else {
		fmt.Println("POST", createURL, "->", resp.Status)
		resp.Body.Close()
	}
}
