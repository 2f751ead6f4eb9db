package main

// @title NOAA Forecast API
// @version 1.0
// @description Normalized National Weather Service forecasts ready for display

// @contact.name API Support
// @contact.email support@example.com

// @host localhost:8080
// @BasePath /
