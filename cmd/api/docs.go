package main

// @title Is It Skiing Yet API
// @version 1.0
// @description Current conditions and 14-day forecasts for Bukovel, with optional forecast history.

// @contact.name API Support

// @host localhost:8000
// @BasePath /
