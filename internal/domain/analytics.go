package domain

import "time"

type VolumePoint struct {
	Date     string `yaml:"date" json:"date" csv:"date"`
	Sent     int    `yaml:"sent" json:"sent" csv:"sent"`
	Received int    `yaml:"received" json:"received" csv:"received"`
}

type DeliveryRate struct {
	Delivered int `yaml:"delivered" json:"delivered"`
	Read      int `yaml:"read" json:"read"`
	Failed    int `yaml:"failed" json:"failed"`
	Pending   int `yaml:"pending" json:"pending"`
}

type EngagementMetrics struct {
	ResponseRate     float64 `yaml:"responseRate" json:"responseRate"`
	AvgResponseTime  float64 `yaml:"avgResponseTime" json:"avgResponseTime"`
	UserSatisfaction float64 `yaml:"userSatisfaction" json:"userSatisfaction"`
	ActiveUsers      int     `yaml:"activeUsers" json:"activeUsers"`
}

type AnalyticsData struct {
	MessageVolume     []VolumePoint     `yaml:"messageVolume" json:"messageVolume"`
	DeliveryRate      DeliveryRate      `yaml:"deliveryRate" json:"deliveryRate"`
	EngagementMetrics EngagementMetrics `yaml:"engagementMetrics" json:"engagementMetrics"`
}

type DateRange struct {
	From time.Time `json:"from"`
	To   time.Time `json:"to"`
}

type Activity struct {
	ID     int    `yaml:"id" json:"id"`
	Type   string `yaml:"type" json:"type"`
	Action string `yaml:"action" json:"action"`
	Name   string `yaml:"name" json:"name"`
	Time   string `yaml:"time" json:"time"`
}
