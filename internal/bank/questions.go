package bank

import "persona-onboarding/internal/domain"

// catalog es el banco de producción: 50 items, 10 por trait, con el
// item reverso al final de cada bloque.
var catalog = []domain.Question{
	// O（開放性）
	{Position: 1, Prompt: "新しいアイデアや企画を考えるのが好きだ。", Trait: domain.TraitOpenness},
	{Position: 2, Prompt: "芸術、音楽、文化的なものに深く心を動かされる。", Trait: domain.TraitOpenness},
	{Position: 3, Prompt: "ルーティンワーク（単純作業）よりも、変化のある環境を好む。", Trait: domain.TraitOpenness},
	{Position: 4, Prompt: "複雑で抽象的な概念について考えるのが得意だ。", Trait: domain.TraitOpenness},
	{Position: 5, Prompt: "慣習や伝統にとらわれず、新しいやり方を試したい。", Trait: domain.TraitOpenness},
	{Position: 6, Prompt: "未知の分野や、自分の知らない世界について学ぶことにワクワクする。", Trait: domain.TraitOpenness},
	{Position: 7, Prompt: "想像力が豊かで、つい空想にふけることがある。", Trait: domain.TraitOpenness},
	{Position: 8, Prompt: "物事の表面だけでなく、背後にある「なぜ？」を深く追求する。", Trait: domain.TraitOpenness},
	{Position: 9, Prompt: "哲学的、あるいは思想的な議論を交わすことに喜びを感じる。", Trait: domain.TraitOpenness},
	{Position: 10, Prompt: "想像を膨らませるより、現実的で具体的な事実だけを見ていたい。", Trait: domain.TraitOpenness, IsReverse: true},

	// C（勤勉性）
	{Position: 11, Prompt: "仕事や作業は、細部まで正確に仕上げないと気が済まない。", Trait: domain.TraitConscientiousness},
	{Position: 12, Prompt: "立てた計画は、最後までスケジュール通りに実行する自信がある。", Trait: domain.TraitConscientiousness},
	{Position: 13, Prompt: "身の回りの整理整頓が常にできている方だ。", Trait: domain.TraitConscientiousness},
	{Position: 14, Prompt: "面倒なことでも、一度引き受けた約束や責任は必ず果たす。", Trait: domain.TraitConscientiousness},
	{Position: 15, Prompt: "衝動買いや、その場のノリでの行動はあまりしない。", Trait: domain.TraitConscientiousness},
	{Position: 16, Prompt: "目標達成のためなら、目先の遊びや誘惑を我慢できる。", Trait: domain.TraitConscientiousness},
	{Position: 17, Prompt: "仕事に取り掛かるのが早く、ギリギリまで先延ばしにすることはない。", Trait: domain.TraitConscientiousness},
	{Position: 18, Prompt: "効率を常に意識し、無駄のない動きを心がけている。", Trait: domain.TraitConscientiousness},
	{Position: 19, Prompt: "ミスを防ぐため、提出前や完了前に必ず二重チェックを行う。", Trait: domain.TraitConscientiousness},
	{Position: 20, Prompt: "計画を立てるのが苦手で、行き当たりばったりで行動しがちだ。", Trait: domain.TraitConscientiousness, IsReverse: true},

	// E（外向性）
	{Position: 21, Prompt: "初対面の人とも、緊張せずにすぐ打ち解けられる。", Trait: domain.TraitExtraversion},
	{Position: 22, Prompt: "飲み会やイベントなど、人が多く集まる活気ある場所が好きだ。", Trait: domain.TraitExtraversion},
	{Position: 23, Prompt: "チームや集団の中では、自らリーダーシップを取ることが多い。", Trait: domain.TraitExtraversion},
	{Position: 24, Prompt: "休日は一人で過ごすより、誰かと会ってエネルギーをチャージしたい。", Trait: domain.TraitExtraversion},
	{Position: 25, Prompt: "自分の意見や考えを、ためらわずにハッキリと主張できる。", Trait: domain.TraitExtraversion},
	{Position: 26, Prompt: "会話の中心になり、場を盛り上げるのが得意な方だ。", Trait: domain.TraitExtraversion},
	{Position: 27, Prompt: "話すスピードや行動のテンポが、周りの人より早いと言われる。", Trait: domain.TraitExtraversion},
	{Position: 28, Prompt: "ポジティブな感情（喜び・楽しさ）を、素直に大きく表現する。", Trait: domain.TraitExtraversion},
	{Position: 29, Prompt: "人と話すことで思考が整理され、新しいアイデアが湧いてくる。", Trait: domain.TraitExtraversion},
	{Position: 30, Prompt: "大勢でワイワイ騒ぐよりも、少人数で静かに過ごす方が好きだ。", Trait: domain.TraitExtraversion, IsReverse: true},

	// A（協調性）
	{Position: 31, Prompt: "困っている人を見ると、自分の作業を止めてでも助けたくなる。", Trait: domain.TraitAgreeableness},
	{Position: 32, Prompt: "チーム内での対立や揉め事を避けるためなら、自分が折れることができる。", Trait: domain.TraitAgreeableness},
	{Position: 33, Prompt: "相手の些細な感情の変化に気づき、共感するのが得意だ。", Trait: domain.TraitAgreeableness},
	{Position: 34, Prompt: "他人の長所を見つけ、素直に褒めることができる。", Trait: domain.TraitAgreeableness},
	{Position: 35, Prompt: "人から頼み事をされると、嫌とは言えず引き受けてしまうことが多い。", Trait: domain.TraitAgreeableness},
	{Position: 36, Prompt: "競争して勝つことよりも、全員で協力して成果を出すことに価値を感じる。", Trait: domain.TraitAgreeableness},
	{Position: 37, Prompt: "他人のミスに対して寛容で、厳しく責め立てることはしない。", Trait: domain.TraitAgreeableness},
	{Position: 38, Prompt: "自分の利益よりも、周囲の人やチーム全体の利益を優先しがちだ。", Trait: domain.TraitAgreeableness},
	{Position: 39, Prompt: "誰に対しても丁寧で、礼儀正しい態度で接することを心がけている。", Trait: domain.TraitAgreeableness},
	{Position: 40, Prompt: "他人の悩みやトラブルには、正直あまり関心がない。", Trait: domain.TraitAgreeableness, IsReverse: true},

	// N（神経症的傾向）
	{Position: 41, Prompt: "プレッシャーのかかる場面では、極度に緊張したり不安になりやすい。", Trait: domain.TraitNeuroticism},
	{Position: 42, Prompt: "他人からの何気ない一言を、深く気に病んでしまうことがある。", Trait: domain.TraitNeuroticism},
	{Position: 43, Prompt: "失敗した時のことを考えると、心配で行動を起こせなくなる。", Trait: domain.TraitNeuroticism},
	{Position: 44, Prompt: "気分が落ち込みやすく、立ち直るまでに時間がかかる方だ。", Trait: domain.TraitNeuroticism},
	{Position: 45, Prompt: "予想外のトラブルが起きると、パニックになり冷静な判断ができなくなる。", Trait: domain.TraitNeuroticism},
	{Position: 46, Prompt: "自分の能力や将来について、強い焦りや劣等感を感じることがある。", Trait: domain.TraitNeuroticism},
	{Position: 47, Prompt: "イライラしやすく、些細なことで感情的になってしまうことがある。", Trait: domain.TraitNeuroticism},
	{Position: 48, Prompt: "夜、考え事をしてしまい眠れなくなる日がよくある。", Trait: domain.TraitNeuroticism},
	{Position: 49, Prompt: "ストレスが溜まると、体調（胃腸や頭痛など）にすぐ表れる。", Trait: domain.TraitNeuroticism},
	{Position: 50, Prompt: "どんなピンチの状況でも、常にリラックスして冷静でいられる。", Trait: domain.TraitNeuroticism, IsReverse: true},
}
