// Package fortune deriva los atributos de calendario sexagenario
// (四柱推命/算命学 simplificado) a partir de la fecha y hora de
// nacimiento. Todo es aritmética modular sobre tablas fijas:
// determinista, sin estado y sin I/O.
package fortune

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Attributes es el registro fijo de 8 campos simbólicos derivados.
// Los seis primeros dependen solo de la fecha; HourPillar y FinalStar
// dependen además de la hora.
type Attributes struct {
	DayPillar  string `json:"day_pillar"`  // 日干支
	VoidPeriod string `json:"void_period"` // 天中殺
	MainStar   string `json:"main_star"`   // 主星
	EarlyStar  string `json:"early_star"`  // 初年
	MiddleStar string `json:"middle_star"` // 中年
	LateStar   string `json:"late_star"`   // 晩年
	HourPillar string `json:"hour_pillar"` // 時干支
	FinalStar  string `json:"final_star"`  // 最晩年
}

// Ordered devuelve los 8 campos en el orden fijo de la fila de salida.
func (a Attributes) Ordered() []string {
	return []string{
		a.DayPillar,
		a.VoidPeriod,
		a.MainStar,
		a.EarlyStar,
		a.MiddleStar,
		a.LateStar,
		a.HourPillar,
		a.FinalStar,
	}
}

// ErrTableMiss indica que una búsqueda en tabla falló. Por construcción
// no debería ocurrir nunca; si ocurre es un bug de derivación y no se
// sustituye ningún valor por defecto.
var ErrTableMiss = errors.New("fortune: lookup table miss")

// Troncos (甲..癸, 1..10) y ramas (子..亥, 1..12).
var stemSymbols = [...]string{"甲", "乙", "丙", "丁", "戊", "己", "庚", "辛", "壬", "癸"}
var branchSymbols = [...]string{"子", "丑", "寅", "卯", "辰", "巳", "午", "未", "申", "酉", "戌", "亥"}

// Tabla del 天中殺 por residuo (rama-tronco) mod 12. Solo residuos
// pares; un residuo impar no puede darse en un ciclo de 60 válido y
// mapea a cadena vacía.
var voidByResidue = map[int]string{
	0:  "戌亥",
	2:  "申酉",
	4:  "午未",
	6:  "辰巳",
	8:  "寅卯",
	10: "子丑",
}

// Tronco oculto (本元) de cada rama de mes.
var hiddenStemByBranch = map[int]int{
	1: 10, 2: 6, 3: 1, 4: 2, 5: 5, 6: 3,
	7: 4, 8: 6, 9: 7, 10: 8, 11: 5, 12: 9,
}

// Matriz 5x2 de 十大主星: fila = distancia de elemento, columna = misma
// polaridad (0) o distinta (1).
var mainStarMatrix = [5][2]string{
	{"貫索星", "石門星"},
	{"鳳閣星", "調舒星"},
	{"禄存星", "司禄星"},
	{"車騎星", "牽牛星"},
	{"龍高星", "玉堂星"},
}

// Las doce 十二大従星 y el ancla de cada tronco de día.
var phaseStarNames = [...]string{
	"天報星", "天印星", "天貴星", "天恍星", "天南星", "天禄星",
	"天将星", "天堂星", "天胡星", "天極星", "天庫星", "天馳星",
}

var phaseAnchorByStem = map[int]int{
	1: 12, 2: 7, 3: 3, 4: 10, 5: 3,
	6: 10, 7: 6, 8: 1, 9: 9, 10: 4,
}

// 五鼠遁: tronco base de la hora 子 según el tronco del día.
var ratEscapeStem = map[int]int{
	1: 1, 6: 1,
	2: 3, 7: 3,
	3: 5, 8: 5,
	4: 7, 9: 7,
	5: 9, 10: 9,
}

const (
	epochOffset = 10 // 1900-01-01 es 甲戌, posición 11 del ciclo
	defaultHour = 12
)

var epoch = time.Date(1900, 1, 1, 0, 0, 0, 0, time.UTC)

// Derive calcula los 8 atributos para una fecha válida de calendario.
// birthTime es "HH:MM" opcional: vacío o malformado se trata como
// mediodía, nunca produce error. El único error posible es un fallo de
// tabla (ErrTableMiss), que indica un bug.
func Derive(year, month, day int, birthTime string) (Attributes, error) {
	target := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	elapsed := int(target.Sub(epoch) / (24 * time.Hour))

	// 日干支: ciclo de 60 desde la época.
	dayCycle := pmod(epochOffset+elapsed, 60) + 1
	dayStem := pmod(dayCycle-1, 10) + 1
	dayBranch := pmod(dayCycle-1, 12) + 1
	dayPillar := stemSymbols[dayStem-1] + branchSymbols[dayBranch-1]

	voidPeriod := voidByResidue[pmod(dayBranch-dayStem, 12)]

	// Corte solar simplificado: antes del día 5 cuenta el mes anterior,
	// y un mes efectivo de enero pertenece al año solar anterior.
	solarMonth, solarYear := month, year
	if day < 5 {
		solarMonth--
	}
	if solarMonth == 0 {
		solarMonth = 12
		solarYear--
	}
	if solarMonth == 1 {
		solarYear--
	}

	monthBranch := (solarMonth + 1) % 12
	if monthBranch == 0 {
		monthBranch = 12
	}
	yearBranch := (solarYear - 3) % 12
	if yearBranch == 0 {
		yearBranch = 12
	}

	// 主星: tronco del día contra el tronco oculto de la rama del mes.
	hiddenStem, ok := hiddenStemByBranch[monthBranch]
	if !ok {
		return Attributes{}, fmt.Errorf("%w: hidden stem for month branch %d", ErrTableMiss, monthBranch)
	}
	selfElement := (dayStem - 1) / 2
	otherElement := (hiddenStem - 1) / 2
	distance := pmod(otherElement-selfElement, 5)
	parityCol := 1
	if dayStem%2 == hiddenStem%2 {
		parityCol = 0
	}
	mainStar := mainStarMatrix[distance][parityCol]

	earlyStar, err := phaseStar(dayStem, yearBranch)
	if err != nil {
		return Attributes{}, err
	}
	middleStar, err := phaseStar(dayStem, monthBranch)
	if err != nil {
		return Attributes{}, err
	}
	lateStar, err := phaseStar(dayStem, dayBranch)
	if err != nil {
		return Attributes{}, err
	}

	// 時干支: buckets de dos horas centrados en 子 (23:00-00:59) y el
	// tronco base según 五鼠遁.
	hour := parseHour(birthTime)
	hourBranch := pmod(floorDiv(hour+1, 2), 12) + 1
	baseStem, ok := ratEscapeStem[dayStem]
	if !ok {
		return Attributes{}, fmt.Errorf("%w: rat escape stem for day stem %d", ErrTableMiss, dayStem)
	}
	hourStem := pmod(baseStem+hourBranch-2, 10) + 1
	hourPillar := stemSymbols[hourStem-1] + branchSymbols[hourBranch-1]

	finalStar, err := phaseStar(dayStem, hourBranch)
	if err != nil {
		return Attributes{}, err
	}

	return Attributes{
		DayPillar:  dayPillar,
		VoidPeriod: voidPeriod,
		MainStar:   mainStar,
		EarlyStar:  earlyStar,
		MiddleStar: middleStar,
		LateStar:   lateStar,
		HourPillar: hourPillar,
		FinalStar:  finalStar,
	}, nil
}

// phaseStar mapea una rama a una de las doce 従星, según la polaridad
// del tronco del día (陽干 avanza, 陰干 retrocede).
func phaseStar(dayStem, targetBranch int) (string, error) {
	anchor, ok := phaseAnchorByStem[dayStem]
	if !ok {
		return "", fmt.Errorf("%w: phase anchor for day stem %d", ErrTableMiss, dayStem)
	}
	var offset int
	if dayStem%2 != 0 {
		offset = pmod(targetBranch-anchor, 12)
	} else {
		offset = pmod(anchor-targetBranch, 12)
	}
	return phaseStarNames[pmod(2+offset, 12)], nil
}

// parseHour extrae la hora de "HH:MM". Vacío o no parseable vale 12;
// esta normalización ocurre solo aquí, nunca en la validación de
// entrada.
func parseHour(birthTime string) int {
	s := strings.TrimSpace(birthTime)
	if s == "" {
		return defaultHour
	}
	hourPart, _, _ := strings.Cut(s, ":")
	hour, err := strconv.Atoi(strings.TrimSpace(hourPart))
	if err != nil {
		return defaultHour
	}
	return hour
}

// pmod es un módulo siempre no negativo (como % de Python).
func pmod(a, n int) int {
	m := a % n
	if m < 0 {
		m += n
	}
	return m
}

// floorDiv divide redondeando hacia abajo (como // de Python).
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
