/*
 * Copyright 2025 Carver Automation Corporation.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package main

import (
	"context"
	"log"
	"os"

	"github.com/carverauto/minut-go/pkg/logger"
	"github.com/carverauto/minut-go/pkg/point"
)

func main() {
	// Fetch configuration from environment variables
	accessToken := os.Getenv("MINUT_ACCESS_TOKEN")
	baseURL := os.Getenv("MINUT_BASE_URL")
	webhookURL := os.Getenv("MINUT_WEBHOOK_URL")

	if accessToken == "" {
		log.Fatal("MINUT_ACCESS_TOKEN must be set")
	}

	ctx := context.Background()

	zlog, err := logger.NewLogger(logger.DefaultConfig())
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}

	cfg := &point.Config{BaseURL: baseURL}

	session, err := point.NewDefault(cfg, point.StaticTokenProvider(accessToken), zlog)
	if err != nil {
		log.Fatalf("Failed to create session: %v", err)
	}

	devices := session.Update(ctx)
	if devices == nil {
		log.Fatal("Update returned no devices")
	}

	log.Printf("Found %d devices", len(devices))

	for _, device := range session.Devices() {
		battery, err := device.BatteryLevel()
		if err != nil {
			log.Printf("Device %s: %v", device.DeviceID(), err)
			continue
		}

		log.Printf("%s battery=%d%%", device, battery)

		if value, ok := device.Sensor(ctx, "temperature"); ok {
			log.Printf("%s temperature=%.1f", device, value)
		}
	}

	for homeID, home := range session.Homes() {
		log.Printf("Home %s (%s) alarm_status=%s", homeID, home.Name, *home.AlarmStatus)
	}

	if user := session.User(ctx); user != nil {
		log.Printf("Authenticated as %s (%s)", user.FullName, user.UserID)
	}

	if webhookURL != "" {
		if hook := session.UpdateWebhook(ctx, webhookURL, "", nil); hook != nil {
			log.Printf("Registered webhook %s", hook.HookID)
		} else {
			log.Printf("Webhook registration skipped, current hook: %q", session.Webhook())
		}
	}
}
