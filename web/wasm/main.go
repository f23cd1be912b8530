//go:build js && wasm

package main

import (
	"syscall/js"

	"github.com/cwbudde/algo-fourier/internal/webdemo"
)

var (
	engine *webdemo.Engine
	funcs  []js.Func
)

func main() {
	api := js.Global().Get("Object").New()
	api.Set("init", export(func(args []js.Value) any {
		sr := 44100
		if len(args) > 0 {
			sr = args[0].Int()
		}
		e, err := webdemo.NewEngine(sr)
		if err != nil {
			return err.Error()
		}
		engine = e
		return js.Null()
	}))

	api.Set("grid", export(func(args []js.Value) any {
		if engine == nil {
			return js.Global().Get("Float64Array").New(0)
		}
		return float64Array(engine.Grid())
	}))

	api.Set("run", export(func(args []js.Value) any {
		if engine == nil || len(args) < 1 {
			return js.Null()
		}
		f, err := engine.Run(args[0].String())
		if err != nil {
			return err.Error()
		}
		return frameObject(f)
	}))

	api.Set("current", export(func(args []js.Value) any {
		if engine == nil {
			return js.Null()
		}
		f, ok := engine.Current()
		if !ok {
			return js.Null()
		}
		return frameObject(f)
	}))

	api.Set("analyze", export(func(args []js.Value) any {
		if engine == nil || len(args) < 4 {
			return js.Null()
		}
		c, err := engine.AnalyzeSeries(args[0].Float(), floats(args[1]), floats(args[2]), args[3].Int())
		if err != nil {
			return err.Error()
		}
		obj := js.Global().Get("Object").New()
		obj.Set("a0", c.A0)
		obj.Set("a", float64Array(c.Cos))
		obj.Set("b", float64Array(c.Sin))
		return obj
	}))

	api.Set("peaks", export(func(args []js.Value) any {
		if engine == nil || len(args) < 1 {
			return js.Global().Get("Float64Array").New(0)
		}
		p, err := engine.Peaks(args[0].Int())
		if err != nil {
			return err.Error()
		}
		return float64Array(p)
	}))

	js.Global().Set("fourier", api)
	select {}
}

func frameObject(f webdemo.Frame) js.Value {
	obj := js.Global().Get("Object").New()
	obj.Set("preset", f.Preset)

	samples := js.Global().Get("Float32Array").New(len(f.Samples))
	for i, v := range f.Samples {
		samples.SetIndex(i, v)
	}
	obj.Set("samples", samples)
	obj.Set("wave", float64Array(f.Wave))

	text := js.Global().Get("Array").New(len(f.Text))
	for i, s := range f.Text {
		text.SetIndex(i, s)
	}
	obj.Set("text", text)
	obj.Set("a0", f.A0)
	obj.Set("a", float64Array(f.Cos))
	obj.Set("b", float64Array(f.Sin))
	return obj
}

func float64Array(data []float64) js.Value {
	arr := js.Global().Get("Float64Array").New(len(data))
	for i, v := range data {
		arr.SetIndex(i, v)
	}
	return arr
}

func floats(v js.Value) []float64 {
	if v.IsUndefined() || v.IsNull() {
		return nil
	}
	out := make([]float64, v.Length())
	for i := range out {
		out[i] = v.Index(i).Float()
	}
	return out
}

func export(fn func([]js.Value) any) js.Func {
	f := js.FuncOf(func(_ js.Value, args []js.Value) any {
		return fn(args)
	})
	funcs = append(funcs, f)
	return f
}
