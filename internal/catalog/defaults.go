package catalog

import "takeout-recommender/internal/models"

// defaultRestaurants is the catalog used when no external source has data.
// It covers every cuisine the matching tables refer to.
var defaultRestaurants = []models.Restaurant{
	{
		ID: 1, Name: "川味小厨", Cuisine: "川菜",
		Price: 45, Rating: 4.5, DeliveryTime: 35,
		Description:   "正宗川味，麻辣鲜香",
		SignatureDish: "麻婆豆腐、水煮鱼、宫保鸡丁",
		Reviews:       "味道正宗，麻辣鲜香！|分量很足，性价比高|服务态度好，配送快",
	},
	{
		ID: 2, Name: "湘味轩", Cuisine: "湘菜",
		Price: 52, Rating: 4.6, DeliveryTime: 40,
		Description:   "湖南风味，香辣下饭",
		SignatureDish: "剁椒鱼头、口味虾、小炒肉",
		Reviews:       "湘菜很正宗，辣得过瘾|菜品新鲜，味道好|价格合理，值得推荐",
	},
	{
		ID: 3, Name: "粤式茶餐厅", Cuisine: "粤菜",
		Price: 68, Rating: 4.7, DeliveryTime: 45,
		Description:   "广式茶点，精致美味",
		SignatureDish: "虾饺、烧卖、叉烧包",
		Reviews:       "茶点很精致，味道正宗|环境不错，适合聚餐|价格稍贵但值得",
	},
	{
		ID: 4, Name: "东北饺子王", Cuisine: "东北菜",
		Price: 38, Rating: 4.4, DeliveryTime: 30,
		Description:   "东北风味，分量十足",
		SignatureDish: "猪肉大葱饺子、锅包肉、地三鲜",
		Reviews:       "饺子皮薄馅大，很好吃|分量真的很足|性价比超高",
	},
	{
		ID: 5, Name: "新疆大盘鸡", Cuisine: "新疆菜",
		Price: 55, Rating: 4.5, DeliveryTime: 50,
		Description:   "新疆特色，大盘实惠",
		SignatureDish: "大盘鸡、羊肉串、手抓饭",
		Reviews:       "大盘鸡分量足，味道好|羊肉串很香|配送时间稍长但值得等",
	},
	{
		ID: 6, Name: "重庆小面", Cuisine: "川菜",
		Price: 25, Rating: 4.3, DeliveryTime: 25,
		Description:   "重庆小面，麻辣过瘾",
		SignatureDish: "重庆小面、豌杂面、红油抄手",
		Reviews:       "小面很正宗，麻辣过瘾|价格便宜，性价比高|配送快，包装好",
	},
	{
		ID: 7, Name: "兰州拉面", Cuisine: "面食",
		Price: 22, Rating: 4.2, DeliveryTime: 28,
		Description:   "兰州拉面，汤鲜味美",
		SignatureDish: "牛肉拉面、羊肉拉面、凉拌牛肉",
		Reviews:       "拉面劲道，汤很鲜|价格实惠|配送及时",
	},
	{
		ID: 8, Name: "沙县小吃", Cuisine: "快餐",
		Price: 20, Rating: 4.0, DeliveryTime: 20,
		Description:   "沙县小吃，经济实惠",
		SignatureDish: "扁肉、拌面、蒸饺",
		Reviews:       "价格便宜，味道不错|配送很快|适合工作餐",
	},
	{
		ID: 9, Name: "黄焖鸡米饭", Cuisine: "快餐",
		Price: 28, Rating: 4.1, DeliveryTime: 30,
		Description:   "黄焖鸡米饭，嫩滑香浓",
		SignatureDish: "黄焖鸡米饭、黄焖排骨",
		Reviews:       "鸡肉嫩滑，米饭香|价格实惠|配送准时",
	},
	{
		ID: 10, Name: "麻辣香锅", Cuisine: "川菜",
		Price: 58, Rating: 4.6, DeliveryTime: 40,
		Description:   "麻辣香锅，食材丰富",
		SignatureDish: "麻辣香锅、干锅牛蛙",
		Reviews:       "食材新鲜，味道好|可以自选配菜|分量足",
	},
	{
		ID: 11, Name: "日式拉面屋", Cuisine: "日式",
		Price: 48, Rating: 4.4, DeliveryTime: 35,
		Description:   "日式拉面，汤底浓郁",
		SignatureDish: "豚骨拉面、味增拉面、日式炸鸡",
		Reviews:       "拉面汤底浓郁，很正宗|环境干净|价格适中",
	},
	{
		ID: 12, Name: "韩式烤肉", Cuisine: "韩式",
		Price: 85, Rating: 4.5, DeliveryTime: 45,
		Description:   "韩式烤肉，肉质鲜嫩",
		SignatureDish: "韩式烤肉、石锅拌饭、泡菜汤",
		Reviews:       "肉质新鲜，烤得很好|配菜丰富|价格稍贵但值得",
	},
	{
		ID: 13, Name: "泰式料理", Cuisine: "泰式",
		Price: 72, Rating: 4.6, DeliveryTime: 50,
		Description:   "泰式料理，酸甜开胃",
		SignatureDish: "冬阴功汤、泰式咖喱、芒果糯米饭",
		Reviews:       "泰式风味正宗|酸甜开胃|配送时间稍长",
	},
	{
		ID: 14, Name: "意式披萨", Cuisine: "意式",
		Price: 65, Rating: 4.5, DeliveryTime: 40,
		Description:   "意式披萨，芝士拉丝",
		SignatureDish: "玛格丽特披萨、意大利面、提拉米苏",
		Reviews:       "披萨芝士拉丝，很好吃|意面正宗|价格合理",
	},
	{
		ID: 15, Name: "法式西餐", Cuisine: "法式",
		Price: 120, Rating: 4.8, DeliveryTime: 60,
		Description:   "法式西餐，精致浪漫",
		SignatureDish: "牛排、鹅肝、法式蜗牛",
		Reviews:       "菜品精致，味道好|环境优雅|价格较高但值得",
	},
	{
		ID: 16, Name: "麦当劳", Cuisine: "快餐",
		Price: 35, Rating: 4.2, DeliveryTime: 30,
		Description:   "快餐连锁，方便快捷",
		SignatureDish: "巨无霸、薯条、麦乐鸡",
		Reviews:       "经典快餐，味道稳定|配送快|价格适中",
	},
	{
		ID: 17, Name: "肯德基", Cuisine: "快餐",
		Price: 38, Rating: 4.3, DeliveryTime: 35,
		Description:   "炸鸡汉堡，经典美味",
		SignatureDish: "原味鸡、香辣鸡腿堡、蛋挞",
		Reviews:       "炸鸡外酥里嫩|配送准时|性价比不错",
	},
	{
		ID: 18, Name: "必胜客", Cuisine: "快餐",
		Price: 55, Rating: 4.4, DeliveryTime: 45,
		Description:   "披萨意面，多种选择",
		SignatureDish: "超级至尊披萨、意式肉酱面",
		Reviews:       "披萨种类多|味道不错|配送及时",
	},
	{
		ID: 19, Name: "星巴克", Cuisine: "饮品",
		Price: 40, Rating: 4.5, DeliveryTime: 25,
		Description:   "咖啡饮品，提神醒脑",
		SignatureDish: "拿铁、美式咖啡、星冰乐",
		Reviews:       "咖啡香浓|服务好|配送快",
	},
	{
		ID: 20, Name: "一点点", Cuisine: "饮品",
		Price: 25, Rating: 4.3, DeliveryTime: 20,
		Description:   "奶茶果茶，香甜可口",
		SignatureDish: "珍珠奶茶、四季春茶、波霸奶茶",
		Reviews:       "奶茶好喝，甜度可选|价格便宜|配送快",
	},
	{
		ID: 21, Name: "海底捞火锅", Cuisine: "火锅",
		Price: 95, Rating: 4.7, DeliveryTime: 50,
		Description:   "火锅连锁，服务贴心",
		SignatureDish: "毛肚、虾滑、牛肉片",
		Reviews:       "服务很好，食材新鲜|配送包装好|价格稍贵",
	},
	{
		ID: 22, Name: "小龙坎", Cuisine: "火锅",
		Price: 88, Rating: 4.6, DeliveryTime: 55,
		Description:   "重庆火锅，麻辣鲜香",
		SignatureDish: "麻辣牛肉、鸭肠、脑花",
		Reviews:       "重庆火锅很正宗|麻辣过瘾|配送时间稍长",
	},
	{
		ID: 23, Name: "大龙燚", Cuisine: "火锅",
		Price: 92, Rating: 4.7, DeliveryTime: 60,
		Description:   "四川火锅，地道正宗",
		SignatureDish: "嫩牛肉、黄喉、毛肚",
		Reviews:       "四川火锅地道|食材新鲜|味道好",
	},
	{
		ID: 24, Name: "呷哺呷哺", Cuisine: "火锅",
		Price: 75, Rating: 4.5, DeliveryTime: 45,
		Description:   "台式火锅，清淡健康",
		SignatureDish: "肥牛、蔬菜拼盘、虾滑",
		Reviews:       "台式火锅清淡|适合不吃辣的人|价格合理",
	},
	{
		ID: 25, Name: "小肥羊", Cuisine: "火锅",
		Price: 85, Rating: 4.6, DeliveryTime: 50,
		Description:   "内蒙古火锅，羊肉鲜嫩",
		SignatureDish: "羊肉片、羊蝎子、手切羊肉",
		Reviews:       "羊肉很新鲜|汤底好|配送及时",
	},
	{
		ID: 26, Name: "老乡鸡", Cuisine: "快餐",
		Price: 35, Rating: 4.3, DeliveryTime: 30,
		Description:   "中式快餐，营养搭配",
		SignatureDish: "鸡汤、蒸蛋、小菜",
		Reviews:       "营养搭配好|味道不错|价格实惠",
	},
	{
		ID: 27, Name: "真功夫", Cuisine: "快餐",
		Price: 32, Rating: 4.2, DeliveryTime: 28,
		Description:   "蒸菜快餐，健康美味",
		SignatureDish: "蒸蛋、蒸排骨、蒸鸡",
		Reviews:       "蒸菜健康|味道清淡|配送快",
	},
	{
		ID: 28, Name: "永和大王", Cuisine: "快餐",
		Price: 28, Rating: 4.1, DeliveryTime: 25,
		Description:   "台式快餐，米饭配菜",
		SignatureDish: "卤肉饭、豆浆、油条",
		Reviews:       "台式快餐正宗|价格便宜|配送及时",
	},
	{
		ID: 29, Name: "李先生", Cuisine: "快餐",
		Price: 25, Rating: 4.0, DeliveryTime: 25,
		Description:   "牛肉面，汤鲜肉烂",
		SignatureDish: "牛肉面、小菜",
		Reviews:       "牛肉面汤鲜|价格实惠|配送快",
	},
	{
		ID: 30, Name: "和合谷", Cuisine: "快餐",
		Price: 30, Rating: 4.2, DeliveryTime: 30,
		Description:   "日式快餐，精致美味",
		SignatureDish: "日式套餐、味增汤",
		Reviews:       "日式快餐精致|味道好|价格适中",
	},
	{
		ID: 31, Name: "西贝莜面村", Cuisine: "西北菜",
		Price: 75, Rating: 4.6, DeliveryTime: 45,
		Description:   "西北风味，面食丰富",
		SignatureDish: "莜面、羊肉串、凉皮",
		Reviews:       "西北风味正宗|面食好吃|价格合理",
	},
	{
		ID: 32, Name: "外婆家", Cuisine: "杭帮菜",
		Price: 65, Rating: 4.5, DeliveryTime: 40,
		Description:   "杭帮菜，清淡精致",
		SignatureDish: "西湖醋鱼、东坡肉、龙井虾仁",
		Reviews:       "杭帮菜清淡|味道精致|环境好",
	},
	{
		ID: 33, Name: "绿茶餐厅", Cuisine: "江浙菜",
		Price: 58, Rating: 4.4, DeliveryTime: 35,
		Description:   "江浙菜，甜咸适中",
		SignatureDish: "糖醋里脊、白切鸡、小笼包",
		Reviews:       "江浙菜正宗|甜咸适中|价格合理",
	},
	{
		ID: 34, Name: "南京大牌档", Cuisine: "江浙菜",
		Price: 72, Rating: 4.7, DeliveryTime: 50,
		Description:   "南京风味，鸭血粉丝",
		SignatureDish: "鸭血粉丝汤、盐水鸭、小笼包",
		Reviews:       "南京风味正宗|鸭血粉丝好吃|配送时间稍长",
	},
	{
		ID: 35, Name: "眉州东坡", Cuisine: "川菜",
		Price: 68, Rating: 4.6, DeliveryTime: 45,
		Description:   "川菜连锁，菜品丰富",
		SignatureDish: "东坡肉、麻婆豆腐、宫保鸡丁",
		Reviews:       "川菜连锁，味道稳定|菜品丰富|价格适中",
	},
	{
		ID: 36, Name: "全聚德", Cuisine: "京菜",
		Price: 150, Rating: 4.8, DeliveryTime: 60,
		Description:   "北京烤鸭，皮脆肉嫩",
		SignatureDish: "北京烤鸭、鸭架汤、京酱肉丝",
		Reviews:       "烤鸭皮脆肉嫩|正宗北京味|价格较高但值得",
	},
	{
		ID: 37, Name: "便宜坊", Cuisine: "京菜",
		Price: 85, Rating: 4.5, DeliveryTime: 40,
		Description:   "焖炉烤鸭，别有风味",
		SignatureDish: "焖炉烤鸭、炸酱面",
		Reviews:       "焖炉烤鸭别有风味|价格合理|配送及时",
	},
	{
		ID: 38, Name: "东来顺", Cuisine: "京菜",
		Price: 120, Rating: 4.7, DeliveryTime: 55,
		Description:   "涮羊肉，肉质鲜嫩",
		SignatureDish: "涮羊肉、芝麻烧饼",
		Reviews:       "涮羊肉肉质好|汤底鲜|价格稍贵",
	},
	{
		ID: 39, Name: "护国寺小吃", Cuisine: "京菜",
		Price: 35, Rating: 4.2, DeliveryTime: 30,
		Description:   "北京小吃，种类丰富",
		SignatureDish: "豆汁、焦圈、驴打滚",
		Reviews:       "北京小吃种类多|味道正宗|价格实惠",
	},
	{
		ID: 40, Name: "庆丰包子铺", Cuisine: "京菜",
		Price: 25, Rating: 4.1, DeliveryTime: 25,
		Description:   "包子铺，馅料多样",
		SignatureDish: "猪肉大葱包子、三鲜包子",
		Reviews:       "包子皮薄馅大|价格便宜|配送快",
	},
	{
		ID: 41, Name: "杨国福麻辣烫", Cuisine: "麻辣烫",
		Price: 32, Rating: 4.3, DeliveryTime: 30,
		Description:   "麻辣烫，自选食材",
		SignatureDish: "麻辣烫、自选配菜",
		Reviews:       "可以自选配菜|味道好|价格实惠",
	},
	{
		ID: 42, Name: "张亮麻辣烫", Cuisine: "麻辣烫",
		Price: 28, Rating: 4.2, DeliveryTime: 28,
		Description:   "麻辣烫连锁，口味统一",
		SignatureDish: "麻辣烫、自选配菜",
		Reviews:       "麻辣烫口味统一|价格便宜|配送快",
	},
	{
		ID: 43, Name: "小杨生煎", Cuisine: "江浙菜",
		Price: 25, Rating: 4.4, DeliveryTime: 25,
		Description:   "生煎包，皮薄馅大",
		SignatureDish: "生煎包、小笼包",
		Reviews:       "生煎包皮薄馅大|价格实惠|配送及时",
	},
	{
		ID: 44, Name: "阿香米线", Cuisine: "快餐",
		Price: 22, Rating: 4.1, DeliveryTime: 30,
		Description:   "米线，汤鲜味美",
		SignatureDish: "过桥米线、酸辣米线",
		Reviews:       "米线汤鲜|价格便宜|配送快",
	},
	{
		ID: 45, Name: "味千拉面", Cuisine: "日式",
		Price: 45, Rating: 4.3, DeliveryTime: 35,
		Description:   "日式拉面，汤底浓郁",
		SignatureDish: "味千拉面、日式炸鸡",
		Reviews:       "拉面汤底浓郁|味道好|价格适中",
	},
	{
		ID: 46, Name: "吉野家", Cuisine: "日式",
		Price: 38, Rating: 4.2, DeliveryTime: 32,
		Description:   "日式快餐，牛肉饭",
		SignatureDish: "牛肉饭、照烧鸡排饭",
		Reviews:       "牛肉饭好吃|价格合理|配送及时",
	},
	{
		ID: 47, Name: "食其家", Cuisine: "日式",
		Price: 35, Rating: 4.1, DeliveryTime: 30,
		Description:   "日式快餐，多种套餐",
		SignatureDish: "牛丼饭、咖喱饭",
		Reviews:       "套餐种类多|味道不错|价格实惠",
	},
	{
		ID: 48, Name: "丸龟制面", Cuisine: "日式",
		Price: 42, Rating: 4.3, DeliveryTime: 35,
		Description:   "日式面食，乌冬面",
		SignatureDish: "乌冬面、天妇罗",
		Reviews:       "乌冬面劲道|价格适中|配送快",
	},
	{
		ID: 49, Name: "萨莉亚", Cuisine: "意式",
		Price: 48, Rating: 4.4, DeliveryTime: 38,
		Description:   "意式快餐，经济实惠",
		SignatureDish: "意式肉酱面、披萨",
		Reviews:       "意式快餐经济实惠|味道好|价格便宜",
	},
	{
		ID: 50, Name: "达美乐披萨", Cuisine: "意式",
		Price: 62, Rating: 4.5, DeliveryTime: 45,
		Description:   "披萨连锁，外送快速",
		SignatureDish: "经典披萨、意式香肠披萨",
		Reviews:       "披萨外送快|味道好|价格合理",
	},
}

// Default returns a catalog built from the built-in restaurant data.
func Default() *Catalog {
	c, err := New(defaultRestaurants)
	if err != nil {
		panic(err)
	}
	return c
}
