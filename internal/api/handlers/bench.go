package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"cellbench/internal/api/models"
	"cellbench/internal/bench"
	"cellbench/internal/model"
)

// BenchHandler serves the command surface: initialize, tick, manual edit,
// emergency stop, reset. It owns the one bench session of the process.
type BenchHandler struct {
	engine *bench.Engine
	src    bench.Source
}

func NewBenchHandler(engine *bench.Engine, src bench.Source) *BenchHandler {
	return &BenchHandler{engine: engine, src: src}
}

// Initialize handles POST /api/v1/bench/initialize.
func (h *BenchHandler) Initialize(c *gin.Context) {
	var req models.InitializeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)
		return
	}

	assign, err := h.assignPolicy(req.Assignment)
	if err != nil {
		writeError(c, err)
		return
	}
	if err := h.engine.Initialize(req.Count, assign); err != nil {
		writeError(c, err)
		return
	}

	logrus.WithField("cells", req.Count).Info("bank initialized")
	c.JSON(http.StatusOK, gin.H{"status": "ok", "cells": req.Count})
}

func (h *BenchHandler) assignPolicy(name string) (bench.AssignFunc, error) {
	reg := h.engine.Store().Registry()
	switch name {
	case "", "random":
		return bench.RandomAssign(reg, h.src), nil
	case "round-robin":
		return bench.RoundRobinAssign(reg), nil
	default:
		if _, err := reg.Lookup(name); err != nil {
			return nil, fmt.Errorf("assignment policy: %w", err)
		}
		return bench.FixedAssign(name), nil
	}
}

// Tick handles POST /api/v1/bench/tick.
func (h *BenchHandler) Tick(c *gin.Context) {
	if h.engine.Store().Len() == 0 {
		writeError(c, model.ErrEmptyStore)
		return
	}
	h.engine.Tick()
	c.JSON(http.StatusOK, gin.H{"status": "ok", "history_len": h.engine.Log().Len()})
}

// EmergencyStop handles POST /api/v1/bench/emergency-stop.
func (h *BenchHandler) EmergencyStop(c *gin.Context) {
	h.engine.EmergencyStop()
	logrus.Warn("emergency stop: all cell currents set to 0")
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Reset handles POST /api/v1/bench/reset.
func (h *BenchHandler) Reset(c *gin.Context) {
	h.engine.Reset()
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// SetCurrent handles PUT /api/v1/cells/:id/current.
func (h *BenchHandler) SetCurrent(c *gin.Context) {
	var req models.SetCurrentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)
		return
	}

	id := c.Param("id")
	cell, err := h.engine.Store().SetCurrent(id, *req.Current)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.CellFromState(id, cell))
}
