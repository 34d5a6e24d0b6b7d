package catalog

var products = []Product{
	{
		ID:          "1",
		Title:       "全案代运营系统",
		Category:    CategoryOperation,
		Description: "聚焦自媒体与电商，提供“省心托管 + AI 驱动”的全流程服务，覆盖抖音、小红书等主流平台。",
		ImageURL:    "https://images.unsplash.com/photo-1551288049-bebda4e38f71?auto=format&fit=crop&w=800&q=80",
	},
	{
		ID:          "2",
		Title:       "AI 视觉工坊",
		Category:    CategoryVisual,
		Description: "品牌视觉资产打造，利用 AI 视频生成技术提升内容产出效率，秒级生成营销短视频。",
		ImageURL:    "https://images.unsplash.com/photo-1618005182384-a83a8bd57fbe?auto=format&fit=crop&w=800&q=80",
	},
	{
		ID:          "3",
		Title:       "智能客服 Agent",
		Category:    CategoryAIAgent,
		Description: "24/7 全天候响应的智能客服机器人，精准理解用户意图，自动处理售后与咨询。",
		ImageURL:    "https://images.unsplash.com/photo-1531746790731-6c087fecd65a?auto=format&fit=crop&w=800&q=80",
	},
	{
		ID:          "4",
		Title:       "内容创作 Agent",
		Category:    CategoryAIAgent,
		Description: "自动化文案撰写与脚本生成助手，深谙各大平台算法逻辑，轻松产出爆款内容。",
		ImageURL:    "https://images.unsplash.com/photo-1677442136019-21780ecad995?auto=format&fit=crop&w=800&q=80",
	},
	{
		ID:          "5",
		Title:       "品牌传播矩阵",
		Category:    CategoryVisual,
		Description: "整合媒体资源，通过 AI 分析舆情趋势，构建全网品牌声量传播系统。",
		ImageURL:    "https://images.unsplash.com/photo-1526374965328-7f61d4dc18c5?auto=format&fit=crop&w=800&q=80",
	},
	{
		ID:          "6",
		Title:       "私域转化引擎",
		Category:    CategoryOperation,
		Description: "从公域引流到私域沉淀，智能化用户分层与社群运营，提升复购率。",
		ImageURL:    "https://images.unsplash.com/photo-1552664730-d307ca884978?auto=format&fit=crop&w=800&q=80",
	},
}

var services = []Service{
	{
		ID:           "s1",
		Title:        "代运营全案服务",
		Description:  "自媒体/电商全托管，含账号搭建、内容策划、数据复盘。",
		PriceRange:   "¥5,000 - ¥20,000 / 月",
		DeliveryTime: "持续服务",
		Icon:         IconBarChart,
	},
	{
		ID:           "s2",
		Title:        "商业视觉创作",
		Description:  "AI 辅助视频制作、品牌 VI 设计、海报宣发物料。",
		PriceRange:   "¥2,000 - ¥10,000 / 项",
		DeliveryTime: "3 - 7 个工作日",
		Icon:         IconVideo,
	},
	{
		ID:           "s3",
		Title:        "AI 智能体定制",
		Description:  "专属企业知识库 Agent 开发，部署到企业微信或官网。",
		PriceRange:   "¥10,000 起 / 个",
		DeliveryTime: "2 - 4 周",
		Icon:         IconCPU,
	},
}

var navLinks = []NavLink{
	{Label: "首页", Href: "#hero"},
	{Label: "核心产品", Href: "#products"},
	{Label: "服务方案", Href: "#services"},
	{Label: "联系我们", Href: "#contact"},
}

var agents = []Agent{
	{
		ID:      "content",
		Title:   "内容创作 Agent",
		Tagline: "您的超级灵感库与文案专家，深谙各大平台算法逻辑。",
		Highlights: []string{
			"全平台脚本一键生成，效率提升 500%",
			"深度学习品牌语气，保持调性一致",
			"实时热点追踪，轻松产出爆款内容",
		},
		PosterURL: "https://images.unsplash.com/photo-1677442136019-21780ecad995?auto=format&fit=crop&w=800&q=80",
		VideoURL:  "https://assets.mixkit.co/videos/preview/mixkit-artificial-intelligence-neural-network-brain-44646-large.mp4",
		Accent:    "purple",
	},
	{
		ID:      "operation",
		Title:   "账号运营 Agent",
		Tagline: "全天候监控数据，精准优化策略，做您的智能运营官。",
		Highlights: []string{
			"自动发布与排期，实现 7x24h 托管",
			"竞品数据实时分析，洞察流量密码",
			"粉丝画像深度洞察，提升转化精准度",
		},
		PosterURL: "https://images.unsplash.com/photo-1551288049-bebda4e38f71?auto=format&fit=crop&w=800&q=80",
		VideoURL:  "https://assets.mixkit.co/videos/preview/mixkit-stock-market-digital-graph-updates-43285-large.mp4",
		Accent:    "blue",
	},
	{
		ID:      "service",
		Title:   "智能客服 Agent",
		Tagline: "秒级响应的金牌销售，永不离线的转化助手。",
		Highlights: []string{
			"0 延迟极速回复，用户满意度提升 40%",
			"主动引导留资，不错过任何销售线索",
			"智能情绪识别与安抚，专业处理售后",
		},
		PosterURL: "https://images.unsplash.com/photo-1531746790731-6c087fecd65a?auto=format&fit=crop&w=800&q=80",
		VideoURL:  "https://assets.mixkit.co/videos/preview/mixkit-chat-bot-animation-on-mobile-screen-animation-27515-large.mp4",
		Accent:    "cyan",
	},
}

var filterTabs = []FilterTab{
	{Category: CategoryAll, Label: "全部产品"},
	{Category: CategoryOperation, Label: "代运营"},
	{Category: CategoryVisual, Label: "视觉创意"},
	{Category: CategoryAIAgent, Label: "AI 智能体"},
}

var projectTypes = []Option{
	{Value: "operation", Label: "代运营全案"},
	{Value: "visual", Label: "视频/视觉设计"},
	{Value: "agent", Label: "AI 智能体开发"},
	{Value: "other", Label: "其他合作"},
}

var budgets = []Option{
	{Value: "1w-5w", Label: "¥10,000 - ¥50,000"},
	{Value: "5w-10w", Label: "¥50,000 - ¥100,000"},
	{Value: "10w+", Label: "¥100,000 以上"},
	{Value: "tbd", Label: "待定/详谈"},
}

var contactChannels = ContactChannels{
	Email:  "344549268@qq.com",
	Phone:  "15706672666",
	WeChat: "Qxdiy-0668",
	Social: []SocialLink{
		{Label: "小红书", URL: "https://xhslink.com/m/2BeXqdyz10w"},
		{Label: "抖音", URL: "https://v.douyin.com/-Zro4ztDw74/"},
	},
}

// Section anchors in document order.
var anchors = []string{"hero", "products", "ai-agents", "services", "contact"}
