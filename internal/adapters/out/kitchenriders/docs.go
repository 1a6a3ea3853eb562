// Package kitchenriders hands accepted delivery orders to the courier service.
//
// RabbitMQDispatcher publishes one persistent JSON message per order to a durable
// exchange and waits for the broker's publisher confirmation. LoggingDispatcher only
// records the request and is meant for local runs without a broker.
package kitchenriders
